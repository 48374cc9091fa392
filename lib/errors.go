/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"errors"
	"fmt"
)

// ReportobelloError is returned for every response outside the 2xx range.
// Message holds the response body exactly as received.
type ReportobelloError struct {
	Message string
	Status  int
}

func (e *ReportobelloError) Error() string {
	return fmt.Sprintf("reportobello: status %d: %s", e.Status, e.Message)
}

// DecodeError is returned when a successful response carries a body that cannot be decoded.
type DecodeError struct {
	Operation string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("reportobello: %s: could not decode response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0 if err is not a ReportobelloError.
func StatusOf(err error) int {
	var rErr *ReportobelloError
	if errors.As(err, &rErr) {
		return rErr.Status
	}
	return 0
}
