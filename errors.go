/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 */

package qrcodegen

import "errors"

// ErrInvalidArgument is returned when a caller supplies an out-of-range
// parameter (bad mask value, bad version range, an ECI assignment outside
// its legal range). Non-encodable text is not reported through this error:
// MakeNumeric and MakeAlphanumeric panic on characters outside their mode's
// set.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrDataTooLong is returned when no version within the requested
// [minVersion, maxVersion] range can hold the assembled bit stream at the
// requested error correction level.
//
// Callers can recover by lowering the error correction level, raising
// maxVersion, splitting the payload into tighter segments, or shortening the
// data.
var ErrDataTooLong = errors.New("data too long for any version in range")
