// Package override loads the manual override file that accompanies a model.
//
// Overrides are keyed by qualified property name, "<Class>.<property>".
//
// # Schema Overview
//
//	version: "1"
//	# Properties the generator must treat as derived.
//	derives:
//	  - Element.owner
//	  - Namespace.member
//	# Manually supplied attribute types and defaults.
//	attributes:
//	  Comment.body:
//	    type: string
//	    default: '""'
//	  MultiplicityElement.isOrdered:
//	    type: bool
//	    default: "false"
//
// A nil *File is a valid, empty policy.
package override
