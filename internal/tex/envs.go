package tex

import "github.com/jgrey4296/dejavu/internal/registry"

// The concrete environment family. Each type fixes the environment name;
// Gantt builds on Tikz.

type Figure struct{ Environment }

func NewFigure() *Figure { return &Figure{Environment{EnvName: "figure"}} }

type Equation struct{ Environment }

func NewEquation() *Equation { return &Equation{Environment{EnvName: "equation"}} }

type Proof struct{ Environment }

func NewProof() *Proof { return &Proof{Environment{EnvName: "proof"}} }

type Verbatim struct{ Environment }

func NewVerbatim() *Verbatim { return &Verbatim{Environment{EnvName: "verbatim"}} }

type ItemList struct{ Environment }

func NewItemList() *ItemList { return &ItemList{Environment{EnvName: "itemize"}} }

type Tikz struct{ Environment }

func NewTikz() *Tikz { return &Tikz{Environment{EnvName: "tikzpicture"}} }

type Gantt struct{ Tikz }

func NewGantt() *Gantt {
	g := &Gantt{}
	g.EnvName = "tikzpicture"
	g.Options = []string{"gantt"}
	return g
}

type Font struct{ Environment }

func NewFont() *Font { return &Font{Environment{EnvName: "font"}} }

type Math struct{ Environment }

func NewMath() *Math { return &Math{Environment{EnvName: "math"}} }

// Module registers prototypes (under the type name) and constructors so
// both are resolvable by code reference.
type Module struct{}

// Register implements registry.Module.
func (Module) Register(r *registry.Registry) {
	ns := r.Namespace("dejavu.tex")
	ns.Register("Figure", NewFigure())
	ns.Register("Equation", NewEquation())
	ns.Register("Proof", NewProof())
	ns.Register("Verbatim", NewVerbatim())
	ns.Register("ItemList", NewItemList())
	ns.Register("Tikz", NewTikz())
	ns.Register("Gantt", NewGantt())
	ns.Register("Font", NewFont())
	ns.Register("Math", NewMath())
	ns.Register("NewFigure", NewFigure)
	ns.Register("NewGantt", NewGantt)
	ns.Register("NewTikz", NewTikz)
}
