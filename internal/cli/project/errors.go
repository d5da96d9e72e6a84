package project

import "errors"

var errNoChanges = errors.New("no settings given")
