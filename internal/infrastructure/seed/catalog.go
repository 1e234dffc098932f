// Package seed loads catalog reference data from YAML.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"service_station/internal/domain/entities"
	"service_station/internal/domain/workflow"
	"service_station/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

// Catalog is the layout of a seed file.
type Catalog struct {
	Services       []entities.Service       `yaml:"services"`
	DefectNodes    []entities.DefectNode    `yaml:"defect_nodes"`
	Workers        []entities.Worker        `yaml:"workers"`
	WarehouseItems []entities.WarehouseItem `yaml:"warehouse_items"`
}

func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, err
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) Validate() error {
	for _, s := range c.Services {
		if s.ID <= 0 || strings.TrimSpace(s.Name) == "" || !workflow.ValidAmount(s.Price) {
			return fmt.Errorf("invalid service %d %q", s.ID, s.Name)
		}
	}
	for _, n := range c.DefectNodes {
		if n.ID <= 0 || strings.TrimSpace(n.Name) == "" {
			return fmt.Errorf("invalid defect node %d %q", n.ID, n.Name)
		}
		for _, t := range n.Types {
			if t.ID <= 0 || strings.TrimSpace(t.Name) == "" {
				return fmt.Errorf("invalid defect type %d %q in node %d", t.ID, t.Name, n.ID)
			}
		}
	}
	for _, w := range c.Workers {
		if w.ID <= 0 || strings.TrimSpace(w.Name) == "" || !w.Role.Valid() {
			return fmt.Errorf("invalid worker %d %q", w.ID, w.Name)
		}
		if w.Status != "" && w.Status != entities.WorkerStatusActive && w.Status != entities.WorkerStatusInactive {
			return fmt.Errorf("invalid worker status %q", w.Status)
		}
	}
	for _, it := range c.WarehouseItems {
		if it.ID <= 0 || strings.TrimSpace(it.Name) == "" || !workflow.ValidAmount(it.Price) || it.Quantity < 0 {
			return fmt.Errorf("invalid warehouse item %d %q", it.ID, it.Name)
		}
	}
	return nil
}

// Apply upserts every entry of c.
func Apply(ctx context.Context, w interfaces.ICatalogWriter, c Catalog) error {
	for _, s := range c.Services {
		if err := w.UpsertService(ctx, s); err != nil {
			return fmt.Errorf("service %d: %w", s.ID, err)
		}
	}
	for _, n := range c.DefectNodes {
		if err := w.UpsertDefectNode(ctx, n); err != nil {
			return fmt.Errorf("defect node %d: %w", n.ID, err)
		}
	}
	for _, wk := range c.Workers {
		if err := w.UpsertWorker(ctx, wk); err != nil {
			return fmt.Errorf("worker %d: %w", wk.ID, err)
		}
	}
	for _, it := range c.WarehouseItems {
		if err := w.UpsertWarehouseItem(ctx, it); err != nil {
			return fmt.Errorf("warehouse item %d: %w", it.ID, err)
		}
	}
	return nil
}
