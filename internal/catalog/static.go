package catalog

import "core/internal/model"

// staticProducts is the built-in fallback dataset of UK water filter
// products. It is used when no database is configured or the database cannot
// be reached, so recommendations keep working offline.
var staticProducts = []model.Product{
	{
		Name:                 "AquaPure Pro RO",
		Type:                 "reverse_osmosis",
		Installation:         model.InstallUnderSink,
		PriceGBP:             249,
		FiltrationType:       "reverse_osmosis",
		CapacityLiters:       180,
		Remineralization:     "yes",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalYes,
		RemovesFluoride:      model.RemovalYes,
		RemovesBacteria:      model.RemovalYes,
		FilterLifespanMonths: 6,
		MaintenanceCostGBP:   85,
		WarrantyYears:        2,
		EcoRating:            2,
	},
	{
		Name:                 "ClearFlow Compact",
		Type:                 "under_sink",
		Installation:         model.InstallUnderSink,
		PriceGBP:             89,
		FiltrationType:       "activated_carbon",
		CapacityLiters:       150,
		Remineralization:     "no",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalPartial,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalNo,
		FilterLifespanMonths: 6,
		MaintenanceCostGBP:   45,
		WarrantyYears:        2,
		EcoRating:            3,
	},
	{
		Name:                 "EcoSpring Gravity",
		Type:                 "countertop",
		Installation:         model.InstallCountertop,
		PriceGBP:             159,
		FiltrationType:       "gravity_ceramic",
		CapacityLiters:       12,
		Remineralization:     "yes",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalYes,
		RemovesFluoride:      model.RemovalPartial,
		RemovesBacteria:      model.RemovalYes,
		FilterLifespanMonths: 24,
		MaintenanceCostGBP:   30,
		WarrantyYears:        5,
		EcoRating:            5,
	},
	{
		Name:                 "AlkaStream Counter",
		Type:                 "countertop",
		Installation:         model.InstallCountertop,
		PriceGBP:             129,
		FiltrationType:       "alkaline_carbon",
		CapacityLiters:       8.5,
		Remineralization:     "yes",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalPartial,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalPartial,
		FilterLifespanMonths: 12,
		MaintenanceCostGBP:   40,
		WarrantyYears:        3,
		EcoRating:            4,
	},
	{
		Name:                 "PureJug 2.4L",
		Type:                 "pitcher",
		Installation:         model.InstallPitcher,
		PriceGBP:             25,
		FiltrationType:       "activated_carbon",
		CapacityLiters:       2.4,
		Remineralization:     "no",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalPartial,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalNo,
		FilterLifespanMonths: 1,
		MaintenanceCostGBP:   60,
		WarrantyYears:        1,
		EcoRating:            2,
	},
	{
		Name:                 "MineralBoost Jug",
		Type:                 "pitcher",
		Installation:         model.InstallPitcher,
		PriceGBP:             39,
		FiltrationType:       "alkaline_carbon",
		CapacityLiters:       3.5,
		Remineralization:     "yes",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalNo,
		RemovesFluoride:      model.RemovalPartial,
		RemovesBacteria:      model.RemovalNo,
		FilterLifespanMonths: 2,
		MaintenanceCostGBP:   65,
		WarrantyYears:        2,
		EcoRating:            3,
	},
	{
		Name:                 "TravelSafe Bottle",
		Type:                 "portable",
		Installation:         model.InstallPortable,
		PriceGBP:             35,
		FiltrationType:       "hollow_fiber",
		CapacityLiters:       0.7,
		Remineralization:     "no",
		RemovesChlorine:      model.RemovalPartial,
		RemovesLead:          model.RemovalNo,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalYes,
		FilterLifespanMonths: 3,
		MaintenanceCostGBP:   55,
		WarrantyYears:        1,
		EcoRating:            4,
	},
	{
		Name:                 "ShowerFresh KDF",
		Type:                 "shower",
		Installation:         model.InstallShower,
		PriceGBP:             45,
		FiltrationType:       "kdf",
		CapacityLiters:       40,
		Remineralization:     "no",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalPartial,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalNo,
		FilterLifespanMonths: 6,
		MaintenanceCostGBP:   50,
		WarrantyYears:        1,
		EcoRating:            3,
	},
	{
		Name:                 "HouseGuard Whole Home",
		Type:                 "whole_house",
		Installation:         model.InstallWholeHouse,
		PriceGBP:             499,
		FiltrationType:       "sediment_carbon",
		CapacityLiters:       500,
		Remineralization:     "no",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalPartial,
		RemovesFluoride:      model.RemovalNo,
		RemovesBacteria:      model.RemovalNo,
		FilterLifespanMonths: 12,
		MaintenanceCostGBP:   120,
		WarrantyYears:        10,
		EcoRating:            3,
	},
	{
		Name:                 "SteelPure Counter RO",
		Type:                 "countertop",
		Installation:         model.InstallCountertop,
		PriceGBP:             199,
		FiltrationType:       "reverse_osmosis",
		CapacityLiters:       75,
		Remineralization:     "yes",
		RemovesChlorine:      model.RemovalYes,
		RemovesLead:          model.RemovalYes,
		RemovesFluoride:      model.RemovalYes,
		RemovesBacteria:      model.RemovalPartial,
		FilterLifespanMonths: 12,
		MaintenanceCostGBP:   70,
		WarrantyYears:        3,
		EcoRating:            3,
	},
}

// Static returns a copy of the built-in dataset. Callers get their own slice
// so the fallback data stays pristine.
func Static() []model.Product {
	products := make([]model.Product, len(staticProducts))
	copy(products, staticProducts)
	return products
}
