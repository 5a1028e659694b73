// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import "github.com/vorlif/spreak/localize"

// monthNames holds the full month names, January first.
var monthNames = [12]localize.MsgID{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var i18nVars = map[string]localize.MsgID{
	"title":     "Monthly Global Land-Surface Temperature",
	"from":      "From",
	"basetemp":  "Base Temperature",
	"legend":    "Temperature (degrees)",
	"years":     "Years",
	"months":    "Months",
	"generated": "Generated %s",
}
