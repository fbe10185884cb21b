package huhforms

import (
	"charm.land/huh/v2"

	"huntboard/internal/models"
)

// CreateApplicationForm creates a huh form for adding or editing an
// application. The form uses pointers to update values in place. The stage
// select is only included when creating; existing records change stage by
// moving on the board.
func CreateApplicationForm(
	company *string,
	role *string,
	url *string,
	location *string,
	salary *string,
	notes *string,
	status *string,
	includeStatus bool,
	confirm *bool,
) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("company").
			Title("Company").
			Placeholder("Company name...").
			Value(company),
	)

	fields = append(fields,
		huh.NewInput().
			Key("role").
			Title("Role").
			Placeholder("Position title...").
			Value(role),
	)

	fields = append(fields,
		huh.NewInput().
			Key("url").
			Title("URL").
			Placeholder("Link to the posting...").
			Value(url),
	)

	fields = append(fields,
		huh.NewInput().
			Key("location").
			Title("Location").
			Placeholder("City, remote, hybrid...").
			Value(location),
	)

	fields = append(fields,
		huh.NewInput().
			Key("salary").
			Title("Salary").
			Placeholder("Listed range, if any...").
			Value(salary),
	)

	fields = append(fields,
		huh.NewText().
			Key("notes").
			Title("Notes").
			Placeholder("Notes in markdown...").
			CharLimit(2000).
			Lines(5).
			Value(notes),
	)

	if includeStatus {
		var statusOptions []huh.Option[string]
		for _, s := range models.AllStatuses() {
			statusOptions = append(statusOptions, huh.NewOption(s.Display(), string(s)))
		}

		fields = append(fields,
			huh.NewSelect[string]().
				Key("status").
				Title("Stage").
				Options(statusOptions...).
				Value(status),
		)
	}

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this application?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(formKeyMap()).WithShowHelp(false)
}
