/*
Package config manages configuration parsing and validation for recompute.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Loads run settings from .yaml, .yml, .json or .hcl files
- Validates required fields, the wrapper name, the run mode and globs
- Fills in defaults (wrapper "Canonical", mode "ask")

🔄 Flow:
1. Load picks a parser by file extension
2. The parser decodes the file, rejecting unknown fields
3. The command line overlays any flags that were set explicitly
4. Validate checks the merged result

📝 Fields:

	directory         source tree to scan (required)
	output_directory  root for rewritten files (required)
	dry_run           print line diffs instead of writing
	wrapper           call name used by the canonical form
	mode              ask | review | merge | quit
	include           doublestar globs a file must match (default: all)
	exclude           doublestar globs that drop a file

🔍 Example:

	cfg, err := config.Load(ctx, ".recompute.yaml")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
