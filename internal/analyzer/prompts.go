package analyzer

type promptSet struct {
	importantSystem string
	importantUser   string
	summarySystem   string
	summaryUser     string
}

const transcriptImportantPrompt = `The following is a lecture transcript. Extract the important content below:

1. Exam information (dates, scope, format, cautions)
2. Assignment information (deadlines, format, topics, requirements)
3. Important announcements or special notes
4. Concepts or content the professor emphasised
5. Important information about attendance or participation

Organise the result by item, and write "No information" for any item that is absent.
Keep the original wording where possible and always include times and concrete instructions.

Lecture transcript:
%s`

const transcriptSummaryPrompt = `The following is a lecture transcript. Summarise its main content concisely using this structure:

1. Lecture topic and goals
2. Main discussion (key concepts, theories, examples)
3. Conclusions and key messages

The summary should be about 10-15%% of the original length and keep important terms and concepts as they are.

Lecture transcript:
%s`

const documentImportantPrompt = `The following is content extracted from a lecture PDF, including both text and analysis of visual elements.
Please identify and extract the most important content, focusing on:

1. Key concepts and definitions
2. Important formulas and equations
3. Critical information for exams or assignments
4. Significant diagrams or visual elements and their meaning

Content:
%s`

const documentSummaryPrompt = `The following is content extracted from a lecture PDF, including both text and analysis of visual elements.
Please provide a comprehensive summary that:

1. Outlines the main topics and concepts covered
2. Explains key ideas in a clear, structured manner
3. Preserves the logical flow of the lecture material
4. Includes important formulas, diagrams, and their significance

Content:
%s`

const imageImportantPrompt = `The following is an analysis of a lecture slide or image.
Please identify and extract the most important content, focusing on:

1. Key concepts and definitions
2. Important formulas and equations
3. Critical information for exams or assignments
4. Significant diagrams or visual elements and their meaning

Analysis:
%s`

const imageSummaryPrompt = `The following is an analysis of a lecture slide or image.
Please provide a concise summary that captures the main points and significance of this content.

Analysis:
%s`

const pageAnalysisPrompt = "Analyze this lecture slide or page. Identify and explain key concepts, formulas, diagrams, and their significance. If there are any important points that would be relevant for exams or assignments, highlight them."

var prompts = map[Kind]promptSet{
	KindTranscript: {
		importantSystem: "You are an assistant that helps students analyze lecture content. Your role is to accurately extract important information from lecture transcripts.",
		importantUser:   transcriptImportantPrompt,
		summarySystem:   "You are an expert at clearly and concisely summarizing academic content. You maintain the core of the lecture content while excluding unnecessary details.",
		summaryUser:     transcriptSummaryPrompt,
	},
	KindDocument: {
		importantSystem: "You are an expert academic assistant that helps students identify the most important information from lecture materials.",
		importantUser:   documentImportantPrompt,
		summarySystem:   "You are an expert academic assistant that helps students understand complex lecture materials by providing clear, comprehensive summaries.",
		summaryUser:     documentSummaryPrompt,
	},
	KindImage: {
		importantSystem: "You are an expert academic assistant that helps students identify the most important information from lecture materials.",
		importantUser:   imageImportantPrompt,
		summarySystem:   "You are an expert academic assistant that helps students understand complex lecture materials by providing clear, concise summaries.",
		summaryUser:     imageSummaryPrompt,
	},
}
