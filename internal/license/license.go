// Package license renders comment-prefixed license attribution blocks for
// generated scripts.
package license

import (
	"sort"
	"strings"

	"github.com/pkgsmith/pkgsmith/internal/render"
)

// License header texts keyed by identifier. Placeholders follow the same
// $NAME syntax as every other template and resolve against the caller's
// bindings; unbound names survive untouched.
var texts = map[string]string{
	"gpl2": `Copyright (C) $YEAR $MAINTAINER

This program is free software; you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation; either version 2 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License along
with this program; if not, write to the Free Software Foundation, Inc.,
51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.`,

	"gpl3": `Copyright (C) $YEAR $MAINTAINER

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.`,

	"lgpl": `Copyright (C) $YEAR $MAINTAINER

This library is free software; you can redistribute it and/or modify
it under the terms of the GNU Lesser General Public License as
published by the Free Software Foundation; either version 2.1 of the
License, or (at your option) any later version.

This library is distributed in the hope that it will be useful, but
WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
Lesser General Public License for more details.`,

	"mit": `Copyright (c) $YEAR $MAINTAINER

Permission is hereby granted, free of charge, to any person obtaining a
copy of this software and associated documentation files (the
"Software"), to deal in the Software without restriction, including
without limitation the rights to use, copy, modify, merge, publish,
distribute, sublicense, and/or sell copies of the Software, and to
permit persons to whom the Software is furnished to do so, subject to
the following conditions:

The above copyright notice and this permission notice shall be included
in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS
OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.`,

	"bsd2": `Copyright (c) $YEAR $MAINTAINER
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.`,

	"bsd3": `Copyright (c) $YEAR $MAINTAINER
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice,
   this list of conditions and the following disclaimer.
2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.
3. Neither the name of $PROJECT_NAME nor the names of its contributors may
   be used to endorse or promote products derived from this software without
   specific prior written permission.`,

	"apache2": `Copyright $YEAR $MAINTAINER

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`,
}

// IDs returns the supported license identifiers, sorted.
func IDs() []string {
	ids := make([]string, 0, len(texts))
	for id := range texts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Known reports whether id is a supported license identifier.
func Known(id string) bool {
	_, ok := texts[strings.ToLower(strings.TrimSpace(id))]
	return ok
}

// Block renders the license text for id with the given bindings applied and
// every line prefixed by commentChar, ready for embedding in a script header.
// Returns an UnknownLicense error when id is not supported.
func Block(id string, bindings render.Bindings, commentChar string) (string, error) {
	text, ok := texts[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return "", newUnknownLicenseError(id)
	}

	rendered := render.Render(text, bindings)

	lines := strings.Split(rendered, "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = commentChar
		} else {
			lines[i] = commentChar + " " + line
		}
	}
	return strings.Join(lines, "\n"), nil
}
