package ai

const summaryPrompt = "You are a professional resume writer. Your task is to enhance the given text to be more impactful and professional. Remove first-person pronouns, use active voice, and include specific achievements where possible. Keep the core information but make it more compelling."

const experiencePrompt = "You are a professional resume writer. Your task is to enhance the given work experience description to be more impactful. Use active voice, strong action verbs, and include specific achievements. Focus on quantifiable results and impact."

// SystemPrompt returns the instruction sent with text of the given role.
// Unknown roles get the general summary instruction.
func SystemPrompt(role Role) string {
	if role == RoleExperience {
		return experiencePrompt
	}
	return summaryPrompt
}
