// Package python provides dependency checking for PyPI packages.
//
// requirements.txt is read line by line. A line contributes a dependency
// only when it is an exact pin such as "requests==2.25.1"; comments, blank
// lines, ranges (>=, ~=), editable installs and URLs are ignored. Inline
// comments introduced by " #" are stripped first.
package python
