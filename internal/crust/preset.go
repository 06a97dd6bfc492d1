package crust

// Preset holds the fixed text that frames every generated file.
type Preset struct {
	// Suffix is forced onto the target filename.
	Suffix string `yaml:"suffix" mapstructure:"suffix"`

	// Hashbang is the first line of the file, including its newline.
	Hashbang string `yaml:"hashbang" mapstructure:"hashbang"`

	// Imports is the commented block of import suggestions.
	Imports string `yaml:"imports" mapstructure:"imports"`

	// MainBody is the body of the "main" block.
	MainBody string `yaml:"main_body" mapstructure:"main_body"`
}

const pythonImports = `# import string
# import re
# import math
# import random
# import itertools
# import functools
# import pathlib
# import os
# import time
# import argparse
# import json
# import collections
# import timeit

`

const pythonMain = `



def __main__():
    print('running main...')

if __name__ == '__main__':
    __main__()

`

// PythonPreset returns the Python 3 skeleton.
func PythonPreset() Preset {
	return Preset{
		Suffix:   ".py",
		Hashbang: "#!/usr/bin/env python3\n",
		Imports:  pythonImports,
		MainBody: pythonMain,
	}
}

// WithDefaults fills empty fields from the Python preset.
func (p Preset) WithDefaults() Preset {
	def := PythonPreset()
	if p.Suffix == "" {
		p.Suffix = def.Suffix
	}
	if p.Hashbang == "" {
		p.Hashbang = def.Hashbang
	}
	if p.Imports == "" {
		p.Imports = def.Imports
	}
	if p.MainBody == "" {
		p.MainBody = def.MainBody
	}
	return p
}
