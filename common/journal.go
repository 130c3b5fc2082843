package common

// RunJournal is the indirection that the journal package binds on import,
// so that deep packages can note events without an import cycle.
var RunJournal = func(event, detail, comment string) {}
