package availability

// CopyToDays applies the source day's slot set onto every target day,
// replacing whatever the target had and forcing it enabled. This is an
// unconditional overwrite, not a merge. Each target gets its own deep copy
// so later edits to one day never leak into another. An empty target set
// returns the template unchanged; the editor disables the apply button in
// that case rather than treating it as an error.
func CopyToDays(tpl WeeklyTemplate, source Weekday, targets []Weekday) WeeklyTemplate {
	if len(targets) == 0 {
		return tpl
	}
	if source < Sunday || source > Saturday {
		return tpl
	}

	src := tpl[source]
	for _, target := range targets {
		if target == source || target < Sunday || target > Saturday {
			continue
		}
		day := tpl[target]
		day.Enabled = true
		day.Slots = cloneSlots(src.Slots)
		tpl[target] = day
	}
	return tpl
}
