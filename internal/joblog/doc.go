// Package joblog records external-tool invocations in SQLite.
//
// Every transcode, render, conversion, and audio split gets a row with a
// uuid, the tool name, source and output paths, lifecycle status, and
// timestamps, so `slate jobs` can answer "what ran last night and did it
// finish". The database lives next to the logs and is transient working
// state, not an archive: schema changes bump schemaVersion and users clear
// the database to adopt them.
package joblog
