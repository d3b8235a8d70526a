package market

import "strings"

type Item[T any] struct {
	Text string `json:"text"`
	Data T      `json:"data"`
}

type Group[T any] struct {
	GroupName string    `json:"group_name"`
	Items     []Item[T] `json:"items"`
}

// FilteredGroup is a Group narrowed by a search term, with the selection state
// of the whole group and of the visible items.
type FilteredGroup[T any] struct {
	GroupName                    string    `json:"group_name"`
	IsEverythingSelected         bool      `json:"is_everything_selected"`
	IsEverythingFilteredSelected bool      `json:"is_everything_filtered_selected"`
	IsSomethingSelected          bool      `json:"is_something_selected"`
	Items                        []Item[T] `json:"items"`
}

// FilterGroups keeps items whose text contains search (case-insensitive) and
// drops groups left empty. An empty search keeps everything.
func FilterGroups[T any](groups []Group[T], search string, selected func(T) bool) []FilteredGroup[T] {
	needle := strings.ToLower(strings.TrimSpace(search))
	if selected == nil {
		selected = func(T) bool { return false }
	}
	out := make([]FilteredGroup[T], 0, len(groups))
	for _, group := range groups {
		fg := FilteredGroup[T]{GroupName: group.GroupName, IsEverythingSelected: len(group.Items) > 0}
		for _, item := range group.Items {
			isSelected := selected(item.Data)
			if isSelected {
				fg.IsSomethingSelected = true
			} else {
				fg.IsEverythingSelected = false
			}
			if needle != "" && !strings.Contains(strings.ToLower(item.Text), needle) {
				continue
			}
			fg.Items = append(fg.Items, item)
		}
		if len(fg.Items) == 0 {
			continue
		}
		fg.IsEverythingFilteredSelected = true
		for _, item := range fg.Items {
			if !selected(item.Data) {
				fg.IsEverythingFilteredSelected = false
				break
			}
		}
		out = append(out, fg)
	}
	return out
}

// Groups splits markets into the GM and GLV listing groups, keeping order.
func Groups(markets []Market) []Group[string] {
	gm := Group[string]{GroupName: "GM"}
	glv := Group[string]{GroupName: "GLV"}
	for _, m := range markets {
		item := Item[string]{Text: m.DisplayName(), Data: m.Address}
		if m.Glv {
			glv.Items = append(glv.Items, item)
		} else {
			gm.Items = append(gm.Items, item)
		}
	}
	return []Group[string]{gm, glv}
}
