package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goserg/powerrank/internal/domain"
)

var (
	ErrBadExportVersion = errors.New("invalid export file version")
	ErrBadImport        = errors.New("invalid import file")
)

const exportVersion = 1

type export struct {
	Version  int                    `json:"version"`
	Snapshot string                 `json:"snapshot,omitempty"`
	Groups   []domain.GroupSnapshot `json:"groups"`
}

func (s *Service) Export() ([]byte, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(export{
		Version:  exportVersion,
		Snapshot: st.snapshot.ID.String(),
		Groups:   st.snapshot.Groups,
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Import stores an exported file as a new snapshot.
func (s *Service) Import(ctx context.Context, data []byte) (domain.Snapshot, error) {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %w", ErrBadImport, err)
	}
	if importData.Version != exportVersion {
		return domain.Snapshot{}, ErrBadExportVersion
	}
	groups := importData.Groups
	for i := range groups {
		groups[i].Group.ID = NormalizeGroupID(groups[i].Group.ID)
		if groups[i].Teams == nil {
			groups[i].Teams = []domain.TeamStats{}
		}
		if groups[i].Matches == nil {
			groups[i].Matches = []domain.Match{}
		}
		for j := range groups[i].Teams {
			groups[i].Teams[j].GroupID = groups[i].Group.ID
		}
		for j := range groups[i].Matches {
			groups[i].Matches[j].GroupID = groups[i].Group.ID
		}
	}
	return s.Replace(ctx, groups)
}
