// Package demo runs the sample occupation scenario against a hash table keyed
// by person.
package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lojhan/chainmap/internal/person"
	"github.com/lojhan/chainmap/internal/store"
)

type Table = store.HashTable[person.Person, string]

type Assignment struct {
	Person     person.Person
	Occupation string
}

// Assignments are applied in order; the second Alice entry overwrites the
// first.
var Assignments = []Assignment{
	{Person: person.New("Alice", 30), Occupation: "Ingeniera"},
	{Person: person.New("Bob", 25), Occupation: "Diseñador"},
	{Person: person.New("Alice", 30), Occupation: "Doctora"},
	{Person: person.New("Charlie", 40), Occupation: "Arquitecto"},
}

type Lookup struct {
	Person person.Person
	Value  string
	Found  bool
}

type Report struct {
	Lookups     []Lookup
	SizeBefore  int
	SizeAfter   int
	Removed     person.Person
	RemovedHit  bool
	AfterRemove Lookup
}

func Run(table *Table, logger *zap.Logger, out io.Writer) (*Report, error) {
	for _, a := range Assignments {
		if err := table.Put(a.Person, a.Occupation); err != nil {
			return nil, fmt.Errorf("failed to store %s: %w", a.Person, err)
		}
	}

	for _, a := range Assignments {
		logger.Info("Person hash",
			zap.Stringer("person", a.Person),
			zap.Int32("hash", a.Person.HashCode()),
			zap.Int("bucket", table.BucketIndex(a.Person)),
		)
	}

	report := &Report{SizeBefore: table.Len()}
	for _, p := range []person.Person{Assignments[0].Person, Assignments[1].Person, Assignments[3].Person} {
		l := lookup(table, p)
		report.Lookups = append(report.Lookups, l)
		logger.Info("Lookup", zap.Stringer("person", p), zap.String("value", l.Value), zap.Bool("found", l.Found))
	}

	report.Removed = Assignments[1].Person
	report.RemovedHit = table.Remove(report.Removed)
	report.AfterRemove = lookup(table, report.Removed)
	report.SizeAfter = table.Len()
	logger.Info("Removed entry",
		zap.Stringer("person", report.Removed),
		zap.Bool("existed", report.RemovedHit),
		zap.Bool("found_after", report.AfterRemove.Found),
		zap.Int("size", report.SizeAfter),
	)

	if _, err := table.WriteTo(out); err != nil {
		return nil, fmt.Errorf("failed to write table contents: %w", err)
	}

	return report, nil
}

func lookup(table *Table, p person.Person) Lookup {
	v, ok := table.Get(p)
	return Lookup{Person: p, Value: v, Found: ok}
}
