/*
Copyright © 2021 the seabgc authors.
This file is part of seabgc.

seabgc is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

seabgc is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with seabgc.  If not, see <http://www.gnu.org/licenses/>.
*/

package seabgc

import "fmt"

// ConfigurationError indicates a missing, duplicated, or inconsistent
// declaration detected while building or validating a model. It is
// fatal: a model that fails configuration must not be stepped.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func newConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}
