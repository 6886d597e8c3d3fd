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

// Package msgfmt renders positional message templates with locale and time
// zone aware sub-formatting.
//
// Templates use indexed placeholders:
//
//	Files: {0}
//	Deadline {1,date,long} at {1,time,short}, done {2,number,percent}
//	It''s '{'literal'}'
//
// A placeholder is {index[,type[,style]]}. Types are number (styles
// integer, percent), date and time (styles short, medium, long, full or a
// custom pattern such as yyyy-MM-dd HH:mm). Named styles and month and day
// names follow the CLDR data of go-playground/locales. Without a type, numbers and
// times are formatted with the locale defaults and everything else with
// fmt.Sprint. A single quote starts a quoted literal, two single quotes
// produce one.
//
// Templates fail as a whole: a syntax error, a missing argument or an
// argument of the wrong kind yields an error and no partial text.
package msgfmt
