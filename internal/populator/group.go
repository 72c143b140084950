package populator

import (
	"github.com/MichalMitros/woocommerce-populator/internal/platform/models"
	"github.com/samber/lo"
)

// productGroup is product with all its variations, or variations whose parent wasn't fetched.
type productGroup struct {
	// product is *models.Simple or *models.Variable, nil for orphan variations.
	product models.Record
	// parentID is external id of parent product of orphan variations.
	parentID   string
	variations []models.Variation
}

// externalID returns external id of product or of parent of orphan variations.
func (g *productGroup) externalID() string {
	if g.product == nil {
		return g.parentID
	}
	return g.product.ExternalID()
}

func (g *productGroup) isOrphan() bool {
	return g.product == nil
}

// groupRecords groups records into product groups before any write is done.
// Variable products get their embedded variations first and top-level variations with matching parent id after.
// Variations whose parent is not among records form orphan groups. Groups keep order of first appearance.
func groupRecords(records []models.Record) []*productGroup {
	variables := make(map[string]*productGroup)
	for _, record := range records {
		if variable, ok := record.(*models.Variable); ok {
			if _, seen := variables[variable.ID]; !seen {
				variables[variable.ID] = &productGroup{
					product:    variable,
					variations: append([]models.Variation{}, variable.Variations...),
				}
			}
		}
	}

	groups := make([]*productGroup, 0, len(records))
	orphans := make(map[string]*productGroup)
	placed := make(map[*productGroup]bool)

	for _, record := range records {
		switch rec := record.(type) {
		case *models.Simple:
			groups = append(groups, &productGroup{product: rec})
		case *models.Variable:
			group := variables[rec.ID]
			if group.product != rec {
				// duplicate of already grouped product, kept as its own group so it is deduplicated.
				groups = append(groups, &productGroup{product: rec, variations: rec.Variations})
				continue
			}
			if !placed[group] {
				groups = append(groups, group)
				placed[group] = true
			}
		case *models.Variation:
			if group, ok := variables[rec.ParentID]; ok {
				group.variations = append(group.variations, *rec)
				continue
			}
			group, ok := orphans[rec.ParentID]
			if !ok {
				group = &productGroup{parentID: rec.ParentID}
				orphans[rec.ParentID] = group
				groups = append(groups, group)
			}
			group.variations = append(group.variations, *rec)
		}
	}

	for _, group := range groups {
		group.variations = lo.UniqBy(group.variations, func(v models.Variation) string { return v.ID })
	}

	return groups
}

// createBatches splits groups into batches of batchSize keeping order.
func createBatches(groups []*productGroup, batchSize int) [][]*productGroup {
	if len(groups) == 0 {
		return [][]*productGroup{}
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return lo.Chunk(groups, batchSize)
}
