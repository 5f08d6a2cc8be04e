package facility

import (
	"fmt"

	"scheduleopt/internal/mip"
)

// varIndex lays out the variable columns: one binary open indicator per
// facility, then one continuous allocation fraction per (customer, facility)
// pair.
type varIndex struct {
	customers  int
	facilities int
}

func (v varIndex) open(facility int) int {
	return facility
}

func (v varIndex) allocation(customer, facility int) int {
	return v.facilities + customer*v.facilities + facility
}

// BuildModel assembles the capacitated facility-location program: minimize
// fixed plus transport cost, subject to every customer being fully allocated
// and facility load never exceeding the capacity of an opened site.
func BuildModel(params *ParameterSet) (*mip.Model, varIndex) {
	index := varIndex{customers: len(params.Customers), facilities: len(params.Facilities)}

	model := &mip.Model{Name: "facility-location"}
	for range params.Facilities {
		model.AddBinary()
	}
	for range params.Customers {
		for range params.Facilities {
			model.AddContinuous(0, 1)
		}
	}

	objective := make([]mip.Term, 0, index.facilities+index.customers*index.facilities)
	for _, facility := range params.Facilities {
		objective = append(objective, mip.Term{Var: index.open(facility.ID), Coef: float64(facility.FixedCost)})
	}
	for _, customer := range params.Customers {
		for _, facility := range params.Facilities {
			objective = append(objective, mip.Term{
				Var:  index.allocation(customer.ID, facility.ID),
				Coef: float64(params.Cost(customer.ID, facility.ID)),
			})
		}
	}
	model.SetObjective(objective, false)

	// Every customer's demand is fully allocated.
	for _, customer := range params.Customers {
		terms := make([]mip.Term, 0, index.facilities)
		for _, facility := range params.Facilities {
			terms = append(terms, mip.Term{Var: index.allocation(customer.ID, facility.ID), Coef: 1})
		}
		model.AddConstraint(mip.Constraint{
			Name:  fmt.Sprintf("demand_i%d", customer.ID),
			Terms: terms,
			Sense: mip.Equal,
			RHS:   1,
		})
	}

	// Load stays under capacity and forces the open indicator.
	for _, facility := range params.Facilities {
		terms := make([]mip.Term, 0, index.customers+1)
		for _, customer := range params.Customers {
			terms = append(terms, mip.Term{
				Var:  index.allocation(customer.ID, facility.ID),
				Coef: float64(customer.Demand),
			})
		}
		terms = append(terms, mip.Term{Var: index.open(facility.ID), Coef: -float64(facility.Capacity)})
		model.AddConstraint(mip.Constraint{
			Name:  fmt.Sprintf("capacity_j%d", facility.ID),
			Terms: terms,
			Sense: mip.LessEq,
			RHS:   0,
		})
	}

	return model, index
}
