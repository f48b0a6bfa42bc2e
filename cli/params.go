package cli

// CommandName returns the first whitespace-delimited token of line.
// The result aliases line.
func CommandName(line []byte) []byte {
	tok, _ := token(line, 0)
	return tok
}

// Parameter returns the index-th (1-based) whitespace-delimited token after
// the command name, or false when the line has fewer parameters. The result
// aliases line; nothing is allocated.
func Parameter(line []byte, index int) ([]byte, bool) {
	if index < 1 {
		return nil, false
	}
	return token(line, index)
}

// ParameterCount returns the number of tokens following the command name.
func ParameterCount(line []byte) int {
	n := 0
	i := 0
	for {
		i = skipSpace(line, i)
		if i >= len(line) {
			break
		}
		n++
		i = skipToken(line, i)
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

// token returns the n-th (0-based) token of line.
func token(line []byte, n int) ([]byte, bool) {
	i := 0
	for {
		i = skipSpace(line, i)
		if i >= len(line) {
			return nil, false
		}
		end := skipToken(line, i)
		if n == 0 {
			return line[i:end], true
		}
		n--
		i = end
	}
}

func skipSpace(line []byte, i int) int {
	for i < len(line) && isSpace(line[i]) {
		i++
	}
	return i
}

func skipToken(line []byte, i int) int {
	for i < len(line) && !isSpace(line[i]) {
		i++
	}
	return i
}

// isSpace treats NUL as a delimiter so that a zero-filled line buffer
// never yields a token.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return false
}
