package languages

var builtin = []Entry{
	{ID: "en-US", Name: "English (US)"},
	{ID: "en-GB", Name: "English (UK)"},
	{ID: "fr", Name: "French"},
	{ID: "de", Name: "German"},
	{ID: "es", Name: "Spanish"},
	{ID: "it", Name: "Italian"},
	{ID: "pt-BR", Name: "Portuguese (Brazil)"},
	{ID: "pt-PT", Name: "Portuguese (Portugal)"},
	{ID: "nl", Name: "Dutch"},
	{ID: "sv", Name: "Swedish"},
	{ID: "da", Name: "Danish"},
	{ID: "nb", Name: "Norwegian Bokmål"},
	{ID: "fi", Name: "Finnish"},
	{ID: "pl", Name: "Polish"},
	{ID: "cs", Name: "Czech"},
	{ID: "hu", Name: "Hungarian"},
	{ID: "ro", Name: "Romanian"},
	{ID: "tr", Name: "Turkish"},
	{ID: "vi", Name: "Vietnamese"},
	{ID: "id", Name: "Indonesian"},
	{ID: "ru", Name: "Russian"},
	{ID: "uk", Name: "Ukrainian"},
	{ID: "bg", Name: "Bulgarian"},
	{ID: "sr", Name: "Serbian", Code: "sr-Cyrl"},
	{ID: "el", Name: "Greek"},
	{ID: "ar", Name: "Arabic"},
	{ID: "fa", Name: "Persian"},
	{ID: "ur", Name: "Urdu"},
	{ID: "he", Name: "Hebrew"},
	{ID: "hi", Name: "Hindi"},
	{ID: "mr", Name: "Marathi"},
	{ID: "ne", Name: "Nepali"},
	{ID: "zh-CN", Name: "Chinese (Simplified)", Code: "zh-Hans-CN"},
	{ID: "zh-TW", Name: "Chinese (Traditional)", Code: "zh-Hant-TW"},
	{ID: "ja", Name: "Japanese"},
	{ID: "ko", Name: "Korean"},
	{ID: "th", Name: "Thai"},
}
