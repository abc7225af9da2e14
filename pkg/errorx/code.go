package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Client side codes, raised before any request leaves the process.
	InvalidArgument Code = 100001

	// Provider side codes.
	BadResponse Code = 100002
	Unavailable Code = 100003
	Canceled    Code = 100004
)

func (c Code) String() string {
	switch c {
	case InvalidArgument:
		return "invalid_argument"
	case BadResponse:
		return "bad_response"
	case Unavailable:
		return "unavailable"
	case Canceled:
		return "canceled"
	}

	return "unknown"
}
