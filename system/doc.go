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

// Package system implements apis.ConfigurationSystem.
//
// A System publishes immutable configuration snapshots through an atomic
// pointer. Reads after the first one are lock-free. The first read builds the
// initial snapshot exactly once, even under concurrent callers: it applies the
// built-in default configurator followed by every discovered configurator in
// discovery order. Writers are serialized and never publish a partially built
// snapshot.
package system
