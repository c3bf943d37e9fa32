package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	grid := []string{ScopeGrid}
	return []KeyBinding{
		{Keys: []string{"left", "h"}, Action: ActionNamePrevDay, Description: "prev day", Scopes: grid},
		{Keys: []string{"right", "l"}, Action: ActionNameNextDay, Description: "next day", Scopes: grid},
		{Keys: []string{"up", "k"}, Action: ActionNamePrevWeek, Description: "prev week", Scopes: grid},
		{Keys: []string{"down", "j"}, Action: ActionNameNextWeek, Description: "next week", Scopes: grid},
		{Keys: []string{"pgup"}, Action: ActionNamePrevMonth, Description: "prev month", Scopes: grid},
		{Keys: []string{"pgdown"}, Action: ActionNameNextMonth, Description: "next month", Scopes: grid},
		{Keys: []string{"home"}, Action: ActionNameWeekStart, Description: "week start", Scopes: grid},
		{Keys: []string{"end"}, Action: ActionNameWeekEnd, Description: "week end", Scopes: grid},
		{Keys: []string{"enter", "space"}, Action: ActionNameSelect, Description: "select", Scopes: grid},
		{Keys: []string{"esc"}, Action: ActionNameBlur, Description: "leave grid", Scopes: grid},
		{Keys: []string{"["}, Action: ActionNameHeaderPrev, Description: "month back", Scopes: []string{"*"}},
		{Keys: []string{"]"}, Action: ActionNameHeaderNext, Description: "month fwd", Scopes: []string{"*"}},
		{Keys: []string{"s"}, Action: ActionNameCycleWeek, Description: "week start", Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: ActionNameFocusGrid, Description: "focus grid", Scopes: []string{ScopeHeader}},
		{Keys: []string{"q", "ctrl+c"}, Action: ActionNameQuit, Description: "quit", Scopes: []string{"*"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
