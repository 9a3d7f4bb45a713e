package libcmd

import "strconv"

// parseInt converts text to an int. The whole token must be a base 10 integer that fits the
// platform int; "-345" is fine, "345abc" and "" are not.
func parseInt(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, NewError(ErrBadInt, text, err)
	}
	return n, nil
}

func parseFloat(text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, NewError(ErrBadFloat, text, err)
	}
	return f, nil
}
