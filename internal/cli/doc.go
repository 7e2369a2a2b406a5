// Package cli is the interactive front end of gametracker: a small REPL over
// tracker.Tracker.
//
// Commands
//
//	help                       show available commands
//	users                      list profiles (* marks the current one)
//	adduser [name]             create a profile
//	select <id|name>           switch to a profile
//	deluser <id|name>          delete a profile and its games
//	logout                     clear the current profile
//	list | l                   list all games, newest first
//	played | backlog           list one shelf
//	add                        add a game interactively
//	rate <id> <1-5|clear>      set or clear a rating (played games only)
//	note <id> [text]           replace notes; no text prompts for lines
//	delete <id>                remove a game
//	tobacklog | toplayed <id>  move a game between shelves
//	search <title>             search the catalog and optionally add a hit
//	details <id>               catalog record for a library game or RAWG id
//	setkey                     enter the RAWG API key without echo
//	exit | quit                leave
package cli
