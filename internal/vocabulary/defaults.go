package vocabulary

// defaultEntries is the fixed table shipped with the linter. Changing a
// mapping changes reported severities for everyone, so additions belong in a
// project overlay unless the token is unambiguous.
var defaultEntries = []Entry{
	// structure: ordering, validation, guards
	{"check", Structure},
	{"validate", Structure},
	{"verify", Structure},
	{"assert", Structure},
	{"ensure", Structure},
	{"test", Structure},
	{"is", Structure},
	{"has", Structure},
	{"can", Structure},
	{"should", Structure},
	{"must", Structure},
	{"match", Structure},
	{"compare", Structure},
	{"filter", Structure},
	{"sort", Structure},
	{"order", Structure},
	{"format", Structure},
	{"normalize", Structure},
	{"sanitize", Structure},
	{"guard", Structure},
	{"lock", Structure},
	{"bind", Structure},
	{"wrap", Structure},
	{"iterate", Structure},
	{"handle", Structure},
	{"validate_schema", Structure},
	{"schema", Structure},
	{"rule", Structure},
	{"constraint", Structure},
	{"valid", Structure},
	{"safe", Structure},

	// creation: constructive and mutating
	{"create", Creation},
	{"make", Creation},
	{"build", Creation},
	{"new", Creation},
	{"init", Creation},
	{"initialize", Creation},
	{"add", Creation},
	{"insert", Creation},
	{"append", Creation},
	{"write", Creation},
	{"save", Creation},
	{"store", Creation},
	{"set", Creation},
	{"assign", Creation},
	{"update", Creation},
	{"merge", Creation},
	{"copy", Creation},
	{"clone", Creation},
	{"generate", Creation},
	{"render", Creation},
	{"emit", Creation},
	{"produce", Creation},
	{"register", Creation},
	{"push", Creation},
	{"put", Creation},
	{"post", Creation},
	{"send", Creation},
	{"publish", Creation},
	{"fill", Creation},
	{"populate", Creation},
	{"attach", Creation},
	{"connect", Creation},
	{"open", Creation},
	{"spawn", Creation},
	{"compose", Creation},
	{"construct", Creation},

	// power: destructive and control-transfer
	{"delete", Power},
	{"remove", Power},
	{"drop", Power},
	{"destroy", Power},
	{"clear", Power},
	{"purge", Power},
	{"kill", Power},
	{"stop", Power},
	{"halt", Power},
	{"close", Power},
	{"terminate", Power},
	{"abort", Power},
	{"cancel", Power},
	{"execute", Power},
	{"exec", Power},
	{"run", Power},
	{"invoke", Power},
	{"dispatch", Power},
	{"apply", Power},
	{"force", Power},
	{"flush", Power},
	{"reset", Power},
	{"raise", Power},
	{"throw", Power},
	{"pop", Power},
	{"truncate", Power},
	{"revoke", Power},
	{"evict", Power},
	{"expire", Power},
	{"shutdown", Power},
	{"commit", Power},
	{"rollback", Power},
	{"trigger", Power},

	// wisdom: observation, retrieval, query
	{"get", Wisdom},
	{"read", Wisdom},
	{"fetch", Wisdom},
	{"load", Wisdom},
	{"query", Wisdom},
	{"find", Wisdom},
	{"search", Wisdom},
	{"select", Wisdom},
	{"list", Wisdom},
	{"count", Wisdom},
	{"parse", Wisdom},
	{"scan", Wisdom},
	{"inspect", Wisdom},
	{"analyze", Wisdom},
	{"resolve", Wisdom},
	{"lookup", Wisdom},
	{"return", Wisdom},
	{"yield", Wisdom},
	{"view", Wisdom},
	{"show", Wisdom},
	{"report", Wisdom},
	{"describe", Wisdom},
	{"explain", Wisdom},
	{"detect", Wisdom},
	{"extract", Wisdom},
	{"collect", Wisdom},
	{"observe", Wisdom},
	{"watch", Wisdom},
	{"peek", Wisdom},
	{"receive", Wisdom},
	{"user", Wisdom},
	{"account", Wisdom},
	{"session", Wisdom},
	{"record", Wisdom},
	{"data", Wisdom},
	{"info", Wisdom},
	{"status", Wisdom},
	{"state", Wisdom},
	{"result", Wisdom},
	{"summary", Wisdom},
}

// Default returns the fixed built-in table. A conflict here is a programming
// error in defaultEntries, hence the panic.
func Default() *Table {
	t, err := NewTable(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}
