package profile

import "fmt"

// census is the district religion-table layout published by the
// statistics bureau: a region/section/sex hierarchy with 7, 8, or 9
// numeric columns depending on the table variant.
var census = Profile{
	Name: "census",
	RegionKeywords: []string{
		"FR", "DISTRICT", "SUB-DIVISION", "TEHSIL", "DIVISION",
		"AGENCY", "TALUKA", "MUSAKHEL", "DE-EXCLUDED", "F.R",
	},
	Sections:       []string{"OVERALL", "RURAL", "URBAN"},
	CategoryColumn: "SEX",
	Categories: []Category{
		{Name: "ALL", Match: "ALL SEXES"},
		{Name: "ALL", Match: "ALL"},
		{Name: "MALE", Match: "MALE"},
		{Name: "FEMALE", Match: "FEMALE"},
		{Name: "TRANSGENDER", Match: "TRANSGENDER"},
	},
	Schemas: []Schema{
		{
			Name: "census_religion_7",
			Columns: []string{
				"TOTAL", "MUSLIM", "CHRISTIAN", "HINDU",
				"QADIANI_AHMADI", "SCHEDULED_CASTES", "OTHERS",
			},
			Min: 7,
		},
		{
			Name: "census_religion_8",
			Columns: []string{
				"TOTAL", "MUSLIM", "CHRISTIAN", "HINDU",
				"QADIANI_AHMADI", "SCHEDULED_CASTES", "OTHERS", "EXTRACOL",
			},
			Min: 7,
		},
		{
			Name: "census_religion_9",
			Columns: []string{
				"TOTAL", "MUSLIM", "CHRISTIAN", "HINDU",
				"QADIANI_AHMADI", "SCHEDULED_CASTES", "OTHERS",
				"EXTRACOL", "EXTRACOL2",
			},
			Min: 7,
		},
	},
	TrimToKeyword: true,
}

// election is the polling-station result layout. Stations have no
// section hierarchy; unknown column counts fall back to generated
// names, since result forms vary by election year.
var election = Profile{
	Name:            "election",
	RegionKeywords:  []string{"CONSTITUENCY", "WARD", "DISTRICT", "DIVISION"},
	CategoryColumn:  "POLLING_STATION",
	CategoryPattern: `^PS[-. ]?\d+`,
	Schemas: []Schema{
		{
			Name: "election_standard",
			Columns: []string{
				"REGISTERED_VOTERS", "VOTES_CAST", "VALID_VOTES", "REJECTED_VOTES",
			},
			Min: 4,
		},
	},
	// Result tables are published in the English number format.
	Grouping:      GroupingComma,
	AutoSchema:    true,
	TrimToKeyword: true,
}

// generic takes any line whose first token is followed by numbers, with
// generated column names. Useful for a first look at an unknown layout.
var generic = Profile{
	Name:            "generic",
	CategoryColumn:  "LABEL",
	CategoryPattern: `^\S+`,
	AutoSchema:      true,
}

// Census returns the built-in census religion-table profile.
func Census() *Profile {
	return census.clone()
}

// Election returns the built-in polling-station profile.
func Election() *Profile {
	return election.clone()
}

// Generic returns the built-in positional fallback profile.
func Generic() *Profile {
	return generic.clone()
}

// Builtin returns the named built-in profile.
func Builtin(name string) (*Profile, error) {
	switch name {
	case "census":
		return Census(), nil
	case "election":
		return Election(), nil
	case "generic":
		return Generic(), nil
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}
