package memory

import "fmt"

// OutOfRangeError reports an access to the RAM region at an offset outside
// its declared range. The Bus hands unclaimed addresses 0x4000-0x7FFF to RAM,
// so Bus.Write returns this error for them (Bus.Read reads them as 0).
type OutOfRangeError struct {
	Region  string
	Address uint16
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("memory: address %#04x out of range for %s", e.Address, e.Region)
}
