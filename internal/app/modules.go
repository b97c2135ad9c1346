package app

import (
	"github.com/jgrey4296/dejavu/internal/geom"
	"github.com/jgrey4296/dejavu/internal/registry"
	"github.com/jgrey4296/dejavu/internal/tex"
	"github.com/jgrey4296/dejavu/modules/envvars"
	"github.com/jgrey4296/dejavu/modules/print"
)

// coreModules is the definitive list of all modules that are compiled into
// the dejavu binary.
var coreModules = []registry.Module{
	&print.Module{},
	&envvars.Module{},
	tex.Module{},
	geom.Module{},
}
