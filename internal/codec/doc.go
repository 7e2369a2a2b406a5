// Package codec converts models to and from the text stored in the
// key-value store.
//
// # Format
//
// Every value is a JSON envelope carrying an explicit schema version:
//
//	{"schema":1,"data":[{"id":"1","title":"Hollow Knight",...}]}
//
// Timestamps are epoch milliseconds and the catalog id is stored as rawgId,
// matching the layout written by earlier releases of the mobile app. Values
// written by those releases have no envelope; they are still accepted and
// decoded with defaults for fields they lack.
//
// Any other input, including an envelope from a newer schema, fails with a
// *DecodeError. Callers treat that as "no data".
package codec
