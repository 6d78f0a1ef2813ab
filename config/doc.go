// SPDX-License-Identifier: MIT

// Package config loads kernelab settings from YAML with environment
// overrides and turns them into engine options and an active kernel.
//
// File layout:
//
//	engine:
//	  workers: 4          # 0 selects GOMAXPROCS
//	kernel:
//	  name: my_kernel     # any registered kernel name
//	  params:
//	    bandwidth: "2."   # numbers or numeric strings
//
// Environment overrides (applied after the file):
//
//	KERNELAB_KERNEL   replaces kernel.name
//	KERNELAB_WORKERS  replaces engine.workers
package config
