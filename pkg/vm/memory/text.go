// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/consensys/go-cairo/pkg/util/field/stark252"
)

// ParseRelocatable parses an address written as "segment:offset", where the
// segment index may be negative.
func ParseRelocatable(text string) (Relocatable, error) {
	segment, offset, found := strings.Cut(text, ":")
	//
	if !found {
		return Relocatable{}, fmt.Errorf("invalid address \"%s\" (expected segment:offset)", text)
	}
	//
	index, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		return Relocatable{}, fmt.Errorf("invalid segment index in \"%s\"", text)
	}
	//
	off, err := strconv.ParseUint(offset, 10, 64)
	if err != nil {
		return Relocatable{}, fmt.Errorf("invalid offset in \"%s\"", text)
	}
	//
	return Relocatable{index, off}, nil
}

// Parse parses a cell value, which is either an address written as
// "segment:offset" or a field element written in decimal or (0x-prefixed)
// hexadecimal.
func Parse(text string) (MaybeRelocatable, error) {
	text = strings.TrimSpace(text)
	//
	if strings.Contains(text, ":") {
		r, err := ParseRelocatable(text)
		//
		return liftRelocatable(r, err)
	}
	//
	f, err := stark252.Parse(text)
	if err != nil {
		return MaybeRelocatable{}, err
	}
	//
	return FromFelt(f), nil
}

// MarshalText implementation for the encoding.TextMarshaler interface.
func (p Relocatable) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implementation for the encoding.TextUnmarshaler interface.
func (p *Relocatable) UnmarshalText(text []byte) error {
	r, err := ParseRelocatable(string(text))
	//
	if err == nil {
		*p = r
	}
	//
	return err
}

// MarshalJSON encodes a cell value as a JSON string holding its text form.
func (v MaybeRelocatable) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a cell value from a JSON string holding its text form.
// Since a cell always holds exactly one variant, null is rejected.
func (v *MaybeRelocatable) UnmarshalJSON(data []byte) error {
	var text string
	//
	if string(data) == "null" {
		return errors.New("cell value cannot be null")
	} else if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	//
	w, err := Parse(text)
	if err == nil {
		*v = w
	}
	//
	return err
}
