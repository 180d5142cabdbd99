// Package policyfile loads policy-set files: YAML documents that bundle
// named policy strings with the mode flags they should be resolved under.
//
//	local: true
//	noisy_homopolymer: false
//	policies:
//	  - name: sensitive
//	    policy: "SEED=0,22;IVAL=S,1,0"
//	  - name: fast
//	    policy: "SEED=0,25;IVAL=S,2.5,0"
//
// Policy-set files drive the lint and watch commands.
package policyfile
