//go:build !unix

package slideshow

import (
	stderrors "errors"
	"os"
)

var errNoSuspend = stderrors.New("pausing external players is not supported on this platform")

func suspend(*os.Process) error { return errNoSuspend }
func resume(*os.Process) error  { return errNoSuspend }
