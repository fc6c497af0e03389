package terminal

import "os"

func pipeFds() (*os.File, *os.File, error) {
	return os.Pipe()
}
