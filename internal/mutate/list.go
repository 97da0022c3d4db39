package mutate

// Cursor-based edits over a single list. Out-of-range cursors make every
// operation a no-op rather than an error.

func Up(cur *int) {
	if *cur > 0 {
		*cur--
	}
}

func Down(list []string, cur *int) {
	if *cur+1 < len(list) {
		*cur++
	}
}

func First(cur *int) { *cur = 0 }

func Last(list []string, cur *int) {
	if len(list) > 0 {
		*cur = len(list) - 1
	}
}

// DragUp swaps the current item with the one above and follows it.
func DragUp(list []string, cur *int) {
	if *cur > 0 && *cur < len(list) {
		list[*cur], list[*cur-1] = list[*cur-1], list[*cur]
		*cur--
	}
}

// DragDown swaps the current item with the one below and follows it.
func DragDown(list []string, cur *int) {
	if *cur+1 < len(list) {
		list[*cur], list[*cur+1] = list[*cur+1], list[*cur]
		*cur++
	}
}

// Insert places title at the cursor, shifting the current item down.
func Insert(list *[]string, cur *int, title string) {
	at := min(max(*cur, 0), len(*list))
	*list = append(*list, "")
	copy((*list)[at+1:], (*list)[at:])
	(*list)[at] = title
	*cur = at
}

// Delete removes the current item and keeps the cursor on a valid row.
func Delete(list *[]string, cur *int) (string, bool) {
	if *cur < 0 || *cur >= len(*list) {
		return "", false
	}
	removed := (*list)[*cur]
	*list = append((*list)[:*cur], (*list)[*cur+1:]...)
	if *cur >= len(*list) && len(*list) > 0 {
		*cur = len(*list) - 1
	}
	return removed, true
}

// Transfer moves the current item of src to the end of dst.
func Transfer(dst, src *[]string, srcCur *int) bool {
	title, ok := Delete(src, srcCur)
	if !ok {
		return false
	}
	*dst = append(*dst, title)
	return true
}
