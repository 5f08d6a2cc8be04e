// Package facility holds the secondary facility-location assignment model.
// It follows the same build -> solve -> project pattern as the scheduling
// core, with only two constraint families: demand satisfaction and
// capacity-open linking.
package facility

import (
	"fmt"
	"math/rand/v2"
)

type Customer struct {
	ID     int
	Demand int
}

type Facility struct {
	ID        int
	FixedCost int
	Capacity  int
}

// CustomerFacility keys the transport-cost relation.
type CustomerFacility struct {
	Customer int
	Facility int
}

type ParameterSet struct {
	Customers     []Customer
	Facilities    []Facility
	TransportCost map[CustomerFacility]int
}

func (params *ParameterSet) Cost(customer, facility int) int {
	return params.TransportCost[CustomerFacility{Customer: customer, Facility: facility}]
}

func (params *ParameterSet) Validate() error {
	for i, customer := range params.Customers {
		if customer.ID != i {
			return fmt.Errorf("invalid parameter set: customer %d is stored at position %d", customer.ID, i)
		}
		if customer.Demand <= 0 {
			return fmt.Errorf("invalid parameter set: customer %d has non-positive demand %d", customer.ID, customer.Demand)
		}
	}
	for j, facility := range params.Facilities {
		if facility.ID != j {
			return fmt.Errorf("invalid parameter set: facility %d is stored at position %d", facility.ID, j)
		}
		if facility.Capacity <= 0 || facility.FixedCost < 0 {
			return fmt.Errorf("invalid parameter set: facility %d has capacity %d and fixed cost %d", facility.ID, facility.Capacity, facility.FixedCost)
		}
	}
	for i := range params.Customers {
		for j := range params.Facilities {
			if _, ok := params.TransportCost[CustomerFacility{Customer: i, Facility: j}]; !ok {
				return fmt.Errorf("invalid parameter set: transport cost of customer %d and facility %d is undefined", i, j)
			}
		}
	}
	return nil
}

type Controls struct {
	Customers  int
	Facilities int
	Seed       uint64
}

// Generate builds a random scenario with the customary ranges: demand
// 10..100, transport cost 5..50, fixed cost 500..2000, capacity 100..500.
func Generate(controls Controls) (*ParameterSet, error) {
	if controls.Customers < 0 || controls.Facilities < 0 {
		return nil, fmt.Errorf("negative entity count in generator controls")
	}
	rng := rand.New(rand.NewPCG(controls.Seed, controls.Seed))

	params := &ParameterSet{
		Customers:     make([]Customer, 0, controls.Customers),
		Facilities:    make([]Facility, 0, controls.Facilities),
		TransportCost: make(map[CustomerFacility]int, controls.Customers*controls.Facilities),
	}
	for i := range controls.Customers {
		params.Customers = append(params.Customers, Customer{ID: i, Demand: 10 + rng.IntN(90)})
	}
	for j := range controls.Facilities {
		params.Facilities = append(params.Facilities, Facility{
			ID:        j,
			FixedCost: 500 + rng.IntN(1500),
			Capacity:  100 + rng.IntN(400),
		})
	}
	for i := range controls.Customers {
		for j := range controls.Facilities {
			params.TransportCost[CustomerFacility{Customer: i, Facility: j}] = 5 + rng.IntN(45)
		}
	}
	return params, nil
}
