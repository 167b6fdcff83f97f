// Package examples holds the demo widgets run by the relm command. Each one
// exercises a different part of the framework: signals, child widgets,
// interval subscriptions, futures over a database, file watching and remote
// requests with surfaced errors.
package examples
