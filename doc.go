// Copyright 2012 Luuk van Dijk. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ncdf reads NetCDF 'classic' (version 1) and '64-bit offset'
// (version 2) files from an in-memory byte image. Writing and NetCDF-4
// (HDF5-backed) files are not supported.
//
// The data model and the classic file format are documented at
//	https://www.unidata.ucar.edu/software/netcdf/docs/classic_format_spec.html
//
// A file's header is immutable once parsed; it describes the dimensions,
// global attributes, and variables found in the file, plus the record
// (unlimited) dimension if one is present. Variable data is decoded on
// demand and is never cached by the Reader.
//
// To open an in-memory image:
//
//	r, err := ncdf.NewReader(buf)
//	if err != nil { ... }
//	vals, err := r.GetVariable("psi")
//
// A Reader's exported methods are safe for concurrent use: each data
// read works from its own freshly cloned cursor over the shared,
// read-only byte image.
package ncdf
