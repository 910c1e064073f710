package catalog

// Reference names for the built-in data set. The resources package resolves
// the same names in its default bundle.
const (
	TitleProfessionals  TextRef = "title_compro_professionals"
	TitleAdmission      TextRef = "title_compro_admission"
	TitleFacultyStudent TextRef = "title_faculty_student"
	TitleFriends        TextRef = "title_friends"
	TitleGraduation     TextRef = "title_graduation"

	ImageProfessionals  ImageRef = "compro_professionals"
	ImageAdmissionTeam  ImageRef = "compro_admission_team"
	ImageFacultyStudent ImageRef = "faculty_student"
	ImageFriends        ImageRef = "friends"
	ImageGraduation     ImageRef = "graduation"
)

// ButtonNext names the label of the advance control. Manifests may set it
// under strings to relabel the button.
const ButtonNext TextRef = "button_next"

var builtinItems = []Item{
	{Title: TitleProfessionals, Image: ImageProfessionals},
	{Title: TitleAdmission, Image: ImageAdmissionTeam},
	{Title: TitleFacultyStudent, Image: ImageFacultyStudent},
	{Title: TitleFriends, Image: ImageFriends},
	{Title: TitleGraduation, Image: ImageGraduation},
}

// Default returns the built-in five item catalog.
func Default() *Catalog {
	return MustNew(builtinItems)
}
