package importer

import (
	"fmt"
	"io"

	"github.com/nmaclean/liftbase/internal/importer/namelist"
)

type Service struct {
	nameListImporter Importer
}

func NewService() *Service {
	return &Service{
		nameListImporter: namelist.New(),
	}
}

// Import extracts exercise names from r according to the declared format.
func (s *Service) Import(format Format, r io.Reader) ([]string, error) {
	switch format {
	case FormatNameList:
		return s.nameListImporter.Parse(r)
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}
}
