package modlgr

/*
Level table operations and the writable decision.

The table is not synchronized by itself: Logger methods take the table
mutex around every call below.
*/

// newLevelTable returns a table holding only the default module threshold.
func newLevelTable() LevelTable {
	return LevelTable{DEFAULT_MODULE: ModuleLevels{TYPE_ALL: DEFAULT_SEVERITY}}
}

// set inserts or overwrites the threshold for (module, typ). Both the type and
// the severity are clamped, out-of-range values are never rejected.
func (t LevelTable) set(module string, sev Severity, typ LogType) {
	levels := t[module]
	if levels == nil {
		levels = ModuleLevels{}
		t[module] = levels
	}
	levels[normType(typ)] = normSeverity(sev)
}

// unset removes the whole module entry (no-op if absent).
func (t LevelTable) unset(module string) {
	delete(t, module)
}

// clone returns a deep copy, so neither side can see later changes of the other.
func (t LevelTable) clone() LevelTable {
	if t == nil {
		return LevelTable{}
	}
	c := make(LevelTable, len(t))
	for module, levels := range t {
		m := make(ModuleLevels, len(levels))
		for typ, sev := range levels {
			m[typ] = sev
		}
		c[module] = m
	}
	return c
}

// defaultThreshold is the TYPE_ALL threshold of DEFAULT_MODULE. A missing
// entry reads as SEV_NULL, so everything passes.
func (t LevelTable) defaultThreshold() Severity {
	return t[DEFAULT_MODULE][TYPE_ALL]
}

// threshold returns the minimal severity for (module, typ) in priority order:
//   - the exact module/type entry
//   - the module TYPE_ALL entry
//   - the DEFAULT_MODULE TYPE_ALL entry
func (t LevelTable) threshold(module string, typ LogType) Severity {
	levels, found := t[module]
	if !found {
		return t.defaultThreshold()
	}
	if sev, found := levels[normType(typ)]; found {
		return sev
	}
	if sev, found := levels[TYPE_ALL]; found {
		return sev
	}
	return t.defaultThreshold()
}

// writable reports whether a call with (module, sev, typ) passes the filter.
func (t LevelTable) writable(module string, sev Severity, typ LogType) bool {
	return t.threshold(module, typ) <= sev
}
