package frame2

import "fmt"

// ErrorCode is one of the RFC 7540 §7 error codes carried by RstStream and
// GoAway frames.
type ErrorCode uint32

const (
	ErrCodeNoError              ErrorCode = 0x0
	ErrCodeProtocolError        ErrorCode = 0x1
	ErrCodeInternalError        ErrorCode = 0x2
	ErrCodeFlowControlError     ErrorCode = 0x3
	ErrCodeSettingsTimeoutError ErrorCode = 0x4
	ErrCodeStreamClosedError    ErrorCode = 0x5
	ErrCodeFrameSizeError       ErrorCode = 0x6
	ErrCodeRefusedStreamError   ErrorCode = 0x7
	ErrCodeCancelError          ErrorCode = 0x8
	ErrCodeCompressionError     ErrorCode = 0x9
	ErrCodeConnectError         ErrorCode = 0xa
	ErrCodeEnhanceYourCalm      ErrorCode = 0xb
	ErrCodeInadequateSecurity   ErrorCode = 0xc
	ErrCodeHTTP11Required       ErrorCode = 0xd
)

var errorCodeNames = map[ErrorCode]string{
	ErrCodeNoError:              "NO_ERROR",
	ErrCodeProtocolError:        "PROTOCOL_ERROR",
	ErrCodeInternalError:        "INTERNAL_ERROR",
	ErrCodeFlowControlError:     "FLOW_CONTROL_ERROR",
	ErrCodeSettingsTimeoutError: "SETTINGS_TIMEOUT",
	ErrCodeStreamClosedError:    "STREAM_CLOSED",
	ErrCodeFrameSizeError:       "FRAME_SIZE_ERROR",
	ErrCodeRefusedStreamError:   "REFUSED_STREAM",
	ErrCodeCancelError:          "CANCEL",
	ErrCodeCompressionError:     "COMPRESSION_ERROR",
	ErrCodeConnectError:         "CONNECT_ERROR",
	ErrCodeEnhanceYourCalm:      "ENHANCE_YOUR_CALM",
	ErrCodeInadequateSecurity:   "INADEQUATE_SECURITY",
	ErrCodeHTTP11Required:       "HTTP_1_1_REQUIRED",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(0x%x)", uint32(c))
}
