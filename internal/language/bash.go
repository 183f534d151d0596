package language

// Shell script framing templates. Every file in a package skeleton is a shell
// artifact, so only the shell variant is provided. Placeholders use the
// $NAME/${NAME} syntax resolved by the render package; anything unbound stays
// verbatim in the output.

// shellHeader frames every generated script when no license is configured.
const shellHeader = `#!/bin/bash

#
# Project: $PROJECT_NAME
# Author: $MAINTAINER
# Created at: $YEAR
#

`

// shellHeaderLicense is the license-carrying variant. The %s slot receives
// the comment-prefixed license block after placeholder substitution, so the
// license text itself is never scanned for placeholders twice.
const shellHeaderLicense = `#!/bin/bash

#
# Project: $PROJECT_NAME
# Author: $MAINTAINER
# Created at: $YEAR
#

%s

`

// shellTail closes every generated script.
const shellTail = `
exit 0
`

// ShellHeader returns the plain script header template.
func ShellHeader() string {
	return shellHeader
}

// ShellHeaderWithLicense returns the header template containing the %s
// license-block slot.
func ShellHeaderWithLicense() string {
	return shellHeaderLicense
}

// ShellTail returns the script footer template.
func ShellTail() string {
	return shellTail
}
