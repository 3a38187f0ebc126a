// SPDX-License-Identifier: Apache-2.0

package sheet

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"strings"
)

// KeyLen is the number of hex characters kept from the digest.
const KeyLen = 8

// Key derives the read-unit key under DefaultSchema.
func Key(ru *ReadUnit) string {
	return DefaultSchema.Key(ru)
}

// Key returns the first KeyLen hex characters of the MD5 digest of the
// concatenated field values in field order. File fields contribute only
// their base name, so the key survives moving the files to another
// directory. Truncation makes collisions possible; callers accept that.
func (s Schema) Key(ru *ReadUnit) string {
	h := md5.New()
	for _, f := range ru.fields {
		v := f.Value
		if s.isFileField(f.Name) {
			v = baseName(v)
		}
		_, _ = io.WriteString(h, v)
	}
	return hex.EncodeToString(h.Sum(nil))[:KeyLen]
}

// baseName returns everything after the last slash; "dir/" yields "".
func baseName(p string) string {
	return p[strings.LastIndex(p, "/")+1:]
}
