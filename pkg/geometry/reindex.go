package geometry

import (
	"fmt"
	"strconv"
)

// Reindex replaces every record identifier. With an empty prefix,
// identifiers become a dense zero-based integer range. With a prefix,
// identifiers become "prefix.NNN" where NNN is a one-based counter
// zero-padded to the digit count of the collection size. Geometry,
// attributes and record order are untouched.
func (c *Collection) Reindex(prefix string) {
	if prefix == "" {
		for i := range c.recs {
			c.recs[i].ID = strconv.Itoa(i)
		}
		return
	}

	width := len(strconv.Itoa(len(c.recs)))
	for i := range c.recs {
		c.recs[i].ID = fmt.Sprintf("%s.%0*d", prefix, width, i+1)
	}
}
