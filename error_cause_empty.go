// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package sctpwire

// OutOfResource reports that the sender is out of resources.
type OutOfResource struct{}

func (e *OutOfResource) Code() ErrorCauseCode { return CauseOutOfResource }

func (e *OutOfResource) ValueLength() int { return 0 }

func (e *OutOfResource) MarshalTo(buf []byte) ([]byte, error) {
	return appendErrorCauseHeader(buf, e)
}

func (e *OutOfResource) unmarshal(value []byte) error {
	return checkCauseValueLength(value, 0)
}

func (e *OutOfResource) String() string { return CauseOutOfResource.String() }

// InvalidMandatoryParameter reports a mandatory INIT or INIT ACK parameter
// set to an invalid value.
type InvalidMandatoryParameter struct{}

func (e *InvalidMandatoryParameter) Code() ErrorCauseCode { return CauseInvalidMandatoryParameter }

func (e *InvalidMandatoryParameter) ValueLength() int { return 0 }

func (e *InvalidMandatoryParameter) MarshalTo(buf []byte) ([]byte, error) {
	return appendErrorCauseHeader(buf, e)
}

func (e *InvalidMandatoryParameter) unmarshal(value []byte) error {
	return checkCauseValueLength(value, 0)
}

func (e *InvalidMandatoryParameter) String() string { return CauseInvalidMandatoryParameter.String() }

// CookieReceivedWhileShuttingDown reports a COOKIE ECHO received in the
// SHUTDOWN-ACK-SENT state.
type CookieReceivedWhileShuttingDown struct{}

func (e *CookieReceivedWhileShuttingDown) Code() ErrorCauseCode {
	return CauseCookieReceivedWhileShuttingDown
}

func (e *CookieReceivedWhileShuttingDown) ValueLength() int { return 0 }

func (e *CookieReceivedWhileShuttingDown) MarshalTo(buf []byte) ([]byte, error) {
	return appendErrorCauseHeader(buf, e)
}

func (e *CookieReceivedWhileShuttingDown) unmarshal(value []byte) error {
	return checkCauseValueLength(value, 0)
}

func (e *CookieReceivedWhileShuttingDown) String() string {
	return CauseCookieReceivedWhileShuttingDown.String()
}
