// Command hrdemo runs the HR pattern demos from one binary.
//
// Usage:
//
//	hrdemo [-config hrdemo.yaml] [-demo factory|observer|singleton|all]
//	       [-roster roster.yaml] [-log-level debug] [-log-format text|json]
//
// Settings come from built-in defaults, then the optional config file, then
// HRDEMO_* environment variables (HRDEMO_NOTICE_MESSAGE -> notice.message),
// then flags. HRDEMO_NOTICE_SUBSCRIBERS takes a comma or space separated
// list. Validation runs after flags, so -demo can replace a bad demo name from
// the file.
//
// Example config:
//
//	log:
//	  level: debug
//	  format: json
//	demo:
//	  name: observer
//	notice:
//	  message: Standup moved to 10
//	  subscribers: [Alice, Bob, Carol]
//	hr:
//	  notice: Office holiday tomorrow!
//
// Example roster (used by the factory demo):
//
//	employees:
//	  - name: Alice
//	    type: FULLTIME
//	  - name: Bob
//	    type: INTERN
//
// Demo output goes to stdout; logs and errors go to stderr. Exit codes are 0
// on success, 2 for usage errors and 1 for everything else.
package main
