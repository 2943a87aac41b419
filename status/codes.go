package status

type Code uint8

// Outcome codes reported by the parsers and decoders. Every failure carries exactly one of
// them, so callers can branch on the class of a failure without matching each sentinel.
const (
	OK Code = iota
	InvalidFormat
	MissingSeparator
	CapacityExceeded
	AllocationFailure
	InvalidArgument
	Overflow
)

// KnownCodes lists every non-OK code.
var KnownCodes = []Code{
	InvalidFormat, MissingSeparator, CapacityExceeded, AllocationFailure, InvalidArgument, Overflow,
}

var codeNames = [...]string{
	OK:                "OK",
	InvalidFormat:     "InvalidFormat",
	MissingSeparator:  "MissingSeparator",
	CapacityExceeded:  "CapacityExceeded",
	AllocationFailure: "AllocationFailure",
	InvalidArgument:   "InvalidArgument",
	Overflow:          "Overflow",
}

func (c Code) String() string {
	if int(c) >= len(codeNames) {
		return "Unknown"
	}

	return codeNames[c]
}
