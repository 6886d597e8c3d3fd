/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package eid provides exception identifiers: short, developer-assigned
// codes that are rendered together with a random per-occurrence token so a
// single failure can be found in logs and traced back to one line of code.
//
//	e := eid.MustNew("20150718:012917")
//	fmt.Println(e) // [20150718:012917]<lx6e4q>
//
//	m := eid.MustNew("20151117:192211").Message("Files: {0}", 18)
//	fmt.Println(m) // [20151117:192211]<0gcfqv> => Files: 18
//
// # Design
//
// Everything the package does is delegated to a Binding (apis.Binding). A
// Binding bundles three things:
//
//   - ConfigurationSystem: owns the current configuration snapshot, i.e. the
//     formatter, the unique token generator, an optional id validator, and
//     the locale and time zone used by message templates.
//
//   - MessageFactory: builds the lazy text of an Eid paired with a message
//     template. Nothing is formatted until the text is first read.
//
//   - LazyFactory: builds memoized values, used for the unique token.
//
// The bundled Binding lives in package builder and is registered in
// registry.Global() under builder.CoreName when this package is loaded. On
// first use the package resolves one Binding from the global registry: any
// other registered Binding wins over the bundled one. Host applications
// override behavior by registering a Binding or a Configurator from an init
// function before the first Eid is created.
//
// # Configuration
//
// Configure applies an apis.Configurator to a copy of the current snapshot
// and publishes the copy. It returns the snapshot it replaced; passing that
// snapshot to Restore reinstates it:
//
//	prev, _ := eid.SetLocale(language.German)
//	defer eid.Restore(prev)
//
// Reads of the configuration are lock-free once it is initialized.
//
// # Independent bindings
//
// With returns a Factory over any Binding. Eids made by such a factory never
// touch the process-wide state, which keeps tests and embedded tools
// isolated:
//
//	f := eid.With(builder.New(builder.WithoutDiscovery()))
//	e, err := f.New("20181203:224055")
//
// # Serialization
//
// Eid and Message encode to JSON, CBOR and gob. Encoding a Message forces its
// text first, so the decoded copy carries only the final strings and never
// formats again.
package eid
