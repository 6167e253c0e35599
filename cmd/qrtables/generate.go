package main

import (
	"github.com/fwojciec/qrtables"
	"github.com/fwojciec/qrtables/generate"
)

// Run executes the capacity command.
func (c *CapacityCmd) Run(deps *Dependencies) error {
	return deps.Generator.Run(deps.Ctx, qrtables.CapacityTable, deps.Stdout)
}

// Run executes the ec-size command.
func (c *ECSizeCmd) Run(deps *Dependencies) error {
	return deps.Generator.Run(deps.Ctx, qrtables.ECSizeTable, deps.Stdout)
}

// Run executes the all command. Tables are generated one after another and
// nothing is written unless all of them succeed.
func (c *AllCmd) Run(deps *Dependencies) error {
	tables := []qrtables.Table{qrtables.CapacityTable, qrtables.ECSizeTable}

	results := make([]*generate.Result, 0, len(tables))
	for _, t := range tables {
		result, err := deps.Generator.Generate(deps.Ctx, t)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	for _, r := range results {
		if err := qrtables.WriteDeclarations(deps.Stdout, r.Header(), r.Declarations, deps.Generator.Dialect); err != nil {
			return err
		}
	}
	return nil
}
