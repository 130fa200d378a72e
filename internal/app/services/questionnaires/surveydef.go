package questionnaires

import (
	"fmt"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
)

// DefaultSurveyDefinition returns the built-in CMMC Level 1 questionnaire.
// It seeds the version store on first boot and is never mutated in place.
func DefaultSurveyDefinition() *models.SurveyDefinition {
	return &models.SurveyDefinition{
		Title:                 "CMMC Level 1 Assessment",
		Description:           "Assessment questionnaire for CMMC Level 1 adherence.",
		ShowProgressBar:       "topBottom",
		ProgressBarType:       "buttons",
		ShowTOC:               true,
		TocLocation:           "left",
		GoNextPageAutomatic:   false,
		ShowNavigationButtons: true,
		ShowPageTitles:        true,
		ShowQuestionNumbers:   "off",
		CheckErrorsMode:       "onValueChanged",
		RequiredText:          "*",
		QuestionErrorLocation: "bottom",
		MaxTextLength:         4000,
		MaxOthersLength:       1000,
		Pages: []models.SurveyPage{
			onboardingPage(),
			questionnairePage(),
		},
	}
}

func choiceList(values ...string) []models.ChoiceItem {
	choices := make([]models.ChoiceItem, 0, len(values))
	for _, v := range values {
		choices = append(choices, models.ChoiceItem{Value: v, Text: v})
	}
	return choices
}

func onboardingQuestion(elementType, question, shortID string, required bool, choices ...string) models.SurveyElement {
	return models.SurveyElement{
		Type:       elementType,
		Name:       fmt.Sprintf("onboarding^%s^%s", question, shortID),
		Title:      question,
		IsRequired: required,
		Choices:    choiceList(choices...),
	}
}

// onboardingFollowUp renders only when the parent answer matches condition,
// e.g. "= 'Yes'" or "contains 'Other'".
func onboardingFollowUp(elementType, parentQuestion, parentShortID, prompt, condition string) models.SurveyElement {
	parentName := fmt.Sprintf("onboarding^%s^%s", parentQuestion, parentShortID)
	return models.SurveyElement{
		Type:       elementType,
		Name:       parentName + constvars.AnswerKeyFollowUpSuffix,
		Title:      prompt,
		VisibleIf:  fmt.Sprintf("{%s} %s", parentName, condition),
		IsRequired: true,
	}
}

func controlQuestion(group, question, shortID, family string) models.SurveyElement {
	return models.SurveyElement{
		Type:        constvars.SurveyElementTypeRadioGroup,
		Name:        fmt.Sprintf("%s@%s@%s", group, question, shortID),
		Title:       question,
		Description: family,
		Choices:     choiceList("Yes", "No", "Unsure"),
		IsRequired:  true,
	}
}

func controlFollowUp(prompt, shortID string, parent models.SurveyElement) models.SurveyElement {
	return models.SurveyElement{
		Type:       constvars.SurveyElementTypeComment,
		Name:       fmt.Sprintf("%s%s%s%s", prompt, constvars.AnswerKeyFollowUpDelimiter, shortID, constvars.AnswerKeyFollowUpSuffix),
		Title:      prompt,
		VisibleIf:  fmt.Sprintf("{%s} = 'Yes'", parent.Name),
		IsRequired: true,
	}
}

func onboardingPage() models.SurveyPage {
	return models.SurveyPage{
		Name:  "onboarding",
		Title: "Onboarding Section",
		Elements: []models.SurveyElement{
			onboardingQuestion(constvars.SurveyElementTypeText, "What is your company name?", "companyName", true),
			onboardingQuestion(constvars.SurveyElementTypeText, "What is your primary business address?", "businessAddress", true),
			onboardingQuestion(constvars.SurveyElementTypeText, "What is your CAGE code?", "cageCode", true),
			onboardingQuestion(constvars.SurveyElementTypeText, "What is your DUNS/UEI (if available)?", "dunsUei", false),
			onboardingQuestion(constvars.SurveyElementTypeText, "What is your primary NAICS code (if known)?", "naicsCode", false),
			onboardingQuestion(constvars.SurveyElementTypeComment, "How would you briefly describe your core business (1-2 sentences)?", "coreBusiness", true),
			onboardingQuestion(constvars.SurveyElementTypeComment, "Who is your primary cybersecurity contact (Name, Title, Email, Phone)?", "primaryCyberContact", true),
			onboardingQuestion(constvars.SurveyElementTypeComment, "Who is your secondary cybersecurity contact (Name, Title, Email, Phone)?", "secondaryCyberContact", false),
			onboardingQuestion(constvars.SurveyElementTypeCheckbox,
				"What types of Federal Contract Information (FCI) or Controlled Unclassified Information (CUI) does your organization handle?", "fciCuiHandled", true,
				"Engineering drawings / Blueprints",
				"Specifications",
				"Cost estimates",
				"Personally Identifiable Information (PII)",
				"Technical Information (IT System Diagrams, IP addresses, etc.)",
				"Other",
			),
			onboardingFollowUp(constvars.SurveyElementTypeText,
				"What types of Federal Contract Information (FCI) or Controlled Unclassified Information (CUI) does your organization handle?", "fciCuiHandled",
				"Please describe the other type of information handled:", "contains 'Other'"),
			onboardingQuestion(constvars.SurveyElementTypeCheckbox, "Which systems store or handle this data?", "systemsHandlingData", true,
				"Office 365 (Outlook, Sharepoint, OneDrive, etc)",
				"Google Workspace (Gmail, Drive, Docs)",
				"Dropbox, Box, or similar cloud storage",
				"On-Premise File Server / Network Drives",
				"Remote worker laptops",
				"Mobile Devices (phones/tablets)",
				"Other",
			),
			onboardingFollowUp(constvars.SurveyElementTypeText,
				"Which systems store or handle this data?", "systemsHandlingData",
				"Please describe the other system used:", "contains 'Other'"),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup, "How many employees regularly handle FCI/CUI data?", "employeesHandlingData", true,
				"1-5", "6-10", "11-20", "21 or more"),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup, "Who currently manages your IT and security?", "itSecurityManagement", true,
				"Internal Employee(s)",
				"External Managed Service Provider (MSP)",
				"Combination (Internal/External)",
				"Informal / No clearly defined role",
			),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup, "Where is most of your work performed?", "workEnvironment", true,
				"Office environment",
				"Remote / Work-from-home",
				"Project sites / Job sites",
				"Hybrid / Combination",
			),
			onboardingQuestion(constvars.SurveyElementTypeComment,
				"What primary software and applications are used to handle FCI/CUI (e.g., email, CAD software, accounting software, etc.)?", "primarySoftware", true),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup,
				"Do you have any existing cybersecurity or compliance documentation?", "existingCyberDocs", true, "Yes", "No"),
			onboardingFollowUp(constvars.SurveyElementTypeComment,
				"Do you have any existing cybersecurity or compliance documentation?", "existingCyberDocs",
				"Please describe the existing documentation:", "= 'Yes'"),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup,
				"Has your organization previously experienced a cybersecurity incident?", "cyberIncidentHistory", true, "Yes", "No", "Unsure"),
			onboardingFollowUp(constvars.SurveyElementTypeComment,
				"Has your organization previously experienced a cybersecurity incident?", "cyberIncidentHistory",
				"Please explain the cybersecurity incident:", "= 'Yes'"),
			onboardingQuestion(constvars.SurveyElementTypeCheckbox,
				"Why is your organization pursuing CMMC Level 1 compliance now?", "complianceReason", true,
				"New contract requirement",
				"Client/customer mandate",
				"Proactive internal risk reduction",
				"Other",
			),
			onboardingFollowUp(constvars.SurveyElementTypeText,
				"Why is your organization pursuing CMMC Level 1 compliance now?", "complianceReason",
				"Please describe the other reason for pursuing compliance:", "contains 'Other'"),
			onboardingQuestion(constvars.SurveyElementTypeRadioGroup,
				"What is your desired timeline for completion of your CMMC SSP and POA&M?", "timelineCompletion", true,
				"Immediate (within 30-90 days)",
				"Short-term (3-6 months)",
				"Moderate (6-12 months)",
				"Flexible / no immediate deadline",
			),
		},
	}
}

func questionnairePage() models.SurveyPage {
	type control struct {
		group    string
		question string
		shortID  string
		family   string
		prompt   string
	}

	controls := []control{
		{"Access Control", "Do you ensure only authorized users can access FCI/CUI and related systems, based on roles and responsibilities?", "authorizedAccess", "Access Control (AC)", "Please explain how authorized access is ensured:"},
		{"Awareness and Training", "Do all personnel receive regular cybersecurity training on protecting FCI/CUI?", "trainingProgram", "Awareness and Training (AT)", "Please describe your training program and frequency:"},
		{"Audit and Accountability", "Does your organization generate, protect, and review audit logs to detect and respond to unauthorized system activity?", "auditLogs", "Audit and Accountability (AU)", "Please explain your audit logging and review process:"},
		{"Configuration Management", "Are system configurations managed and controlled to maintain security and prevent unauthorized changes across your IT environment?", "configMgmt", "Configuration Management (CM)", "Please explain your configuration management controls:"},
		{"Identification and Authentication", "Do you have methods to verify the identities of users and devices before granting access to systems containing FCI/CUI?", "identityVerification", "Identification and Authentication (IA)", "Please explain your identity and device verification methods:"},
		{"Incident Response", "Does your organization detect, respond to, and recover from cybersecurity incidents involving FCI/CUI?", "incidentResponse", "Incident Response (IR)", "Please explain your incident response capabilities:"},
		{"Maintenance", "Are system maintenance activities managed and monitored to ensure they do not compromise FCI/CUI security?", "maintenanceMgmt", "Maintenance (MA)", "Please explain how maintenance activities are managed and monitored:"},
		{"Media Protection", "Do you have procedures that protect, transport, and sanitize physical and digital media containing FCI/CUI?", "mediaProtection", "Media Protection (MP)", "Please explain your media protection and sanitization procedures:"},
		{"Personnel Security", "Do you ensure that individuals with access to FCI/CUI are properly screened and access is removed upon termination or transfer?", "personnelSecurity", "Personnel Security (PS)", "Please explain your screening and offboarding practices:"},
		{"Physical Protection", "Does your organization restrict physical access to systems, equipment, and storage locations that handle FCI/CUI?", "physicalAccess", "Physical Protection (PE)", "Please explain your physical access controls:"},
		{"Risk Assessment", "Do you identify, assess, and respond to cybersecurity risks that could impact the confidentiality of FCI/CUI?", "riskAssessment", "Risk Assessment (RA)", "Please describe your risk assessment process and cadence:"},
		{"Security Assessment", "Does your organization evaluate and improve the effectiveness of your security controls to protect FCI/CUI?", "securityAssessment", "Security Assessment (CA)", "Please explain how security controls are assessed and improved:"},
		{"System and Communications Protection", "Are your systems and communications protected to prevent unauthorized data transfer and ensure FCI/CUI confidentiality?", "commProtection", "System and Communications Protection (SC)", "Please explain your protections for systems and communications:"},
		{"System and Information Integrity", "Do you detect, report, and correct system flaws or malicious activity that may affect FCI/CUI?", "trackSystemFlaws", "System and Information Integrity (SI)", "Please explain how you detect and remediate flaws or malicious activity:"},
	}

	elements := make([]models.SurveyElement, 0, len(controls)*2)
	for _, c := range controls {
		question := controlQuestion(c.group, c.question, c.shortID, c.family)
		elements = append(elements, question, controlFollowUp(c.prompt, c.shortID, question))
	}

	return models.SurveyPage{
		Name:     "questionnaire",
		Title:    "Questionnaire Section",
		Elements: elements,
	}
}
