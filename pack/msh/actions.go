package msh

import (
	"github.com/mogaika/battlezone_browser/pack"
)

func init() {
	pack.SetHandler(".MSH", func(path string) (interface{}, error) {
		return Open(path)
	})
}
