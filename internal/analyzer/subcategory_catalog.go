package analyzer

import (
	"fmt"
	"strings"

	"github.com/vfg2006/market-analyzer-api/internal/domain"
)

type subcategoryGroup struct {
	records map[string]*domain.SubcategoryRecord
	order   []string
}

// SubcategoryCatalog guarda as subcategorias agrupadas pela categoria macro.
// Os nomes são únicos dentro da categoria e a ordem de inserção é preservada.
type SubcategoryCatalog struct {
	groups map[string]*subcategoryGroup
	order  []string
}

func NewSubcategoryCatalog() *SubcategoryCatalog {
	return &SubcategoryCatalog{
		groups: make(map[string]*subcategoryGroup),
	}
}

// Add cadastra uma subcategoria com o agregado de 6 meses
func (c *SubcategoryCatalog) Add(category, name string, revenue float64, units int64) error {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)

	if err := c.validate(category, name, revenue, units); err != nil {
		return err
	}
	if c.find(category, name) != nil {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateSubcategory, category, name)
	}

	record := c.create(category, name)
	record.Entries = []domain.SubcategoryEntry{domain.NewSubcategoryEntry(domain.AggregatePeriod, revenue, units)}

	return nil
}

// AddPeriod inclui um lançamento mensal, criando a subcategoria se necessário.
// Os lançamentos são somados na leitura.
func (c *SubcategoryCatalog) AddPeriod(category, name, period string, revenue float64, units int64) error {
	category = strings.TrimSpace(category)
	name = strings.TrimSpace(name)
	period = strings.TrimSpace(period)

	if err := c.validate(category, name, revenue, units); err != nil {
		return err
	}
	if err := checkName("período", period); err != nil {
		return err
	}

	record := c.find(category, name)
	if record == nil {
		record = c.create(category, name)
	}

	for _, entry := range record.Entries {
		if entry.Period == period {
			return fmt.Errorf("%w: %s/%s/%s", ErrDuplicatePeriod, category, name, period)
		}
	}
	record.Entries = append(record.Entries, domain.NewSubcategoryEntry(period, revenue, units))

	return nil
}

// Edit renomeia a subcategoria e substitui seus valores por um único agregado.
// Retorna false sem alterar nada quando a subcategoria não existe.
func (c *SubcategoryCatalog) Edit(category, name, newName string, revenue float64, units int64) (bool, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		newName = name
	}

	if err := c.validate(category, newName, revenue, units); err != nil {
		return false, err
	}

	record := c.find(category, name)
	if record == nil {
		return false, nil
	}

	if newName != name {
		if c.find(category, newName) != nil {
			return false, fmt.Errorf("%w: %s/%s", ErrDuplicateSubcategory, category, newName)
		}

		group := c.groups[category]
		delete(group.records, name)
		group.records[newName] = record
		for i, n := range group.order {
			if n == name {
				group.order[i] = newName
				break
			}
		}
		record.Name = newName
	}

	record.Entries = []domain.SubcategoryEntry{domain.NewSubcategoryEntry(domain.AggregatePeriod, revenue, units)}

	return true, nil
}

// Remove exclui a subcategoria; a categoria some junto com a última subcategoria
func (c *SubcategoryCatalog) Remove(category, name string) bool {
	group, ok := c.groups[category]
	if !ok {
		return false
	}
	if _, ok := group.records[name]; !ok {
		return false
	}

	delete(group.records, name)
	for i, n := range group.order {
		if n == name {
			group.order = append(group.order[:i:i], group.order[i+1:]...)
			break
		}
	}

	if len(group.order) == 0 {
		c.RemoveCategory(category)
	}

	return true
}

// RemoveCategory exclui todas as subcategorias da categoria
func (c *SubcategoryCatalog) RemoveCategory(category string) bool {
	if _, ok := c.groups[category]; !ok {
		return false
	}

	delete(c.groups, category)
	for i, name := range c.order {
		if name == category {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}

	return true
}

// HasCategory indica se existe ao menos uma subcategoria na categoria
func (c *SubcategoryCatalog) HasCategory(category string) bool {
	group, ok := c.groups[category]
	return ok && len(group.order) > 0
}

// Categories lista as categorias em ordem de inserção
func (c *SubcategoryCatalog) Categories() []string {
	return append([]string(nil), c.order...)
}

// Get retorna uma cópia da subcategoria ou nil quando ela não existe
func (c *SubcategoryCatalog) Get(category, name string) *domain.SubcategoryRecord {
	record := c.find(category, name)
	if record == nil {
		return nil
	}

	cp := *record
	cp.Entries = append([]domain.SubcategoryEntry(nil), record.Entries...)
	return &cp
}

// Summary retorna a visão consolidada de uma subcategoria
func (c *SubcategoryCatalog) Summary(category, name string) (domain.SubcategorySummary, bool) {
	record := c.find(category, name)
	if record == nil {
		return domain.SubcategorySummary{}, false
	}
	return record.Summary(), true
}

// Summaries retorna as subcategorias consolidadas da categoria, em ordem de inserção
func (c *SubcategoryCatalog) Summaries(category string) []domain.SubcategorySummary {
	summaries := []domain.SubcategorySummary{}

	group, ok := c.groups[category]
	if !ok {
		return summaries
	}

	for _, name := range group.order {
		summaries = append(summaries, group.records[name].Summary())
	}

	return summaries
}

// Count retorna o total de subcategorias da categoria
func (c *SubcategoryCatalog) Count(category string) int {
	group, ok := c.groups[category]
	if !ok {
		return 0
	}
	return len(group.order)
}

func (c *SubcategoryCatalog) validate(category, name string, revenue float64, units int64) error {
	if err := checkName("categoria", category); err != nil {
		return err
	}
	if err := checkName("subcategoria", name); err != nil {
		return err
	}
	if err := checkAmount("faturamento", revenue); err != nil {
		return err
	}
	return checkUnits("unidades", units)
}

func (c *SubcategoryCatalog) find(category, name string) *domain.SubcategoryRecord {
	group, ok := c.groups[category]
	if !ok {
		return nil
	}
	return group.records[name]
}

func (c *SubcategoryCatalog) create(category, name string) *domain.SubcategoryRecord {
	group, ok := c.groups[category]
	if !ok {
		group = &subcategoryGroup{records: make(map[string]*domain.SubcategoryRecord)}
		c.groups[category] = group
		c.order = append(c.order, category)
	}

	record := &domain.SubcategoryRecord{Category: category, Name: name}
	group.records[name] = record
	group.order = append(group.order, name)

	return record
}

func (c *SubcategoryCatalog) renameCategory(category, newName string) {
	group, ok := c.groups[category]
	if !ok {
		return
	}

	for _, record := range group.records {
		record.Category = newName
	}
	delete(c.groups, category)
	c.groups[newName] = group

	for i, name := range c.order {
		if name == category {
			c.order[i] = newName
			break
		}
	}
}
