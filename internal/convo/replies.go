package convo

import "fmt"

// replyKind enumerates everything the agent can say. Texts live in
// per-language template tables with English as the fallback; templates of
// one kind take the same arguments in every language.
type replyKind int

const (
	replyWelcome      replyKind = iota // product, price
	replyPitch                         // product, price
	replyAskName
	replyAskCity
	replyAskPhone
	replyAskAddress
	replyConfirmPhone // phone
	replyAskOtherPhone
	replySummary // name, city, address, phone, product, price
	replyLedgerRetry
	replyThanks
	replyAlreadyRecorded
	replyCompletedAck
	replyHandoff
	replyCorrection
)

var replyTemplates = map[string]map[replyKind]string{
	"en": {
		replyWelcome:         "Hello and welcome! We sell %s for %s. How can I help you today?",
		replyPitch:           "Our %s costs %s, delivery included. Would you like to order one?",
		replyAskName:         "Great! What is your name, please?",
		replyAskCity:         "Which city are you in?",
		replyAskPhone:        "What phone number can we reach you on?",
		replyAskAddress:      "Could you give me your delivery address?",
		replyConfirmPhone:    "Just to confirm, your phone number is %s, correct?",
		replyAskOtherPhone:   "No problem. Please send me the correct phone number.",
		replySummary:         "Here is your order:\nName: %s\nCity: %s\nAddress: %s\nPhone: %s\nProduct: %s\nPrice: %s\nShall I confirm it?",
		replyLedgerRetry:     "Sorry, something went wrong saving your order. Please reply to try again, or an agent will follow up shortly.",
		replyThanks:          "Thank you! Your order is confirmed. We will contact you for delivery.",
		replyAlreadyRecorded: "Good news, your order was already registered. We will contact you for delivery.",
		replyCompletedAck:    "Your order is registered. An agent will contact you soon.",
		replyHandoff:         "I will let a human colleague take over, they will contact you shortly.",
		replyCorrection:      "No problem. Tell me what to correct (name, city, address or phone).",
	},
	"fr": {
		replyWelcome:         "Bonjour et bienvenue ! Nous vendons %s à %s. Comment puis-je vous aider ?",
		replyPitch:           "Notre %s coûte %s, livraison incluse. Voulez-vous commander ?",
		replyAskName:         "Très bien ! Quel est votre nom, s'il vous plaît ?",
		replyAskCity:         "Dans quelle ville êtes-vous ?",
		replyAskPhone:        "Quel est votre numéro de téléphone ?",
		replyAskAddress:      "Pouvez-vous me donner votre adresse de livraison ?",
		replyConfirmPhone:    "Pour confirmer, votre numéro est bien %s ?",
		replyAskOtherPhone:   "Pas de souci. Envoyez-moi le bon numéro de téléphone.",
		replySummary:         "Voici votre commande :\nNom : %s\nVille : %s\nAdresse : %s\nTéléphone : %s\nProduit : %s\nPrix : %s\nJe confirme ?",
		replyLedgerRetry:     "Désolé, une erreur est survenue lors de l'enregistrement. Répondez pour réessayer, ou un agent vous contactera.",
		replyThanks:          "Merci ! Votre commande est confirmée. Nous vous contacterons pour la livraison.",
		replyAlreadyRecorded: "Bonne nouvelle, votre commande était déjà enregistrée. Nous vous contacterons pour la livraison.",
		replyCompletedAck:    "Votre commande est enregistrée. Un agent vous contactera bientôt.",
		replyHandoff:         "Je passe la main à un collègue, il vous contactera rapidement.",
		replyCorrection:      "Pas de souci. Dites-moi quoi corriger (nom, ville, adresse ou téléphone).",
	},
	"ar": {
		replyWelcome:         "مرحبا بك! نبيع %s بثمن %s. كيف يمكنني مساعدتك؟",
		replyPitch:           "ثمن %s هو %s مع التوصيل. هل تريد الطلب؟",
		replyAskName:         "رائع! ما اسمك من فضلك؟",
		replyAskCity:         "في أي مدينة أنت؟",
		replyAskPhone:        "ما هو رقم هاتفك؟",
		replyAskAddress:      "ما هو عنوان التوصيل؟",
		replyConfirmPhone:    "للتأكيد، رقم هاتفك هو %s، صحيح؟",
		replyAskOtherPhone:   "لا مشكلة. أرسل لي الرقم الصحيح من فضلك.",
		replySummary:         "ملخص طلبك:\nالاسم: %s\nالمدينة: %s\nالعنوان: %s\nالهاتف: %s\nالمنتج: %s\nالثمن: %s\nهل أؤكد الطلب؟",
		replyLedgerRetry:     "عذرا، وقع خطأ أثناء تسجيل طلبك. أجب للمحاولة مرة أخرى أو سيتواصل معك أحد الموظفين.",
		replyThanks:          "شكرا لك! تم تأكيد طلبك وسنتواصل معك للتوصيل.",
		replyAlreadyRecorded: "طلبك مسجل عندنا من قبل. سنتواصل معك للتوصيل.",
		replyCompletedAck:    "طلبك مسجل. سيتواصل معك أحد الموظفين قريبا.",
		replyHandoff:         "سأحول المحادثة إلى زميل بشري وسيتواصل معك قريبا.",
		replyCorrection:      "لا مشكلة. قل لي ما الذي يجب تصحيحه (الاسم، المدينة، العنوان أو الهاتف).",
	},
	"dr": {
		replyWelcome:         "Salam! Kanbi3o %s b %s. Kifach n9der n3awnek?",
		replyPitch:           "Taman dyal %s howa %s m3a livraison. Bghiti tcommandi?",
		replyAskName:         "Wakha! Chno smitk 3afak?",
		replyAskCity:         "F ina mdina nta/nti?",
		replyAskPhone:        "Chno howa ra9m l'hatif dyalk?",
		replyAskAddress:      "3tini l'adresse dyal livraison 3afak.",
		replyConfirmPhone:    "Bach nt2ekked, ra9mek howa %s, s7i7?",
		replyAskOtherPhone:   "Machi mochkil. Seft liya ra9m s7i7 3afak.",
		replySummary:         "Hahowa talab dyalk:\nSmiya: %s\nMdina: %s\nAdresse: %s\nTelephone: %s\nProduit: %s\nTaman: %s\nNconfirmé?",
		replyLedgerRetry:     "Sme7 lina, w9e3 mochkil f tasjil talab. 3awed jaweb bach n3awdo, wla ghadi ytwasel m3ak wa7ed l'agent.",
		replyThanks:          "Choukran! Talab dyalk tconfirma. Ghadi ntwaslo m3ak bach nwaslouh.",
		replyAlreadyRecorded: "Talab dyalk deja msejjel. Ghadi ntwaslo m3ak bach nwaslouh.",
		replyCompletedAck:    "Talab dyalk msejjel. Ghadi ytwasel m3ak wa7ed l'agent 9riban.",
		replyHandoff:         "Ghadi n3ti l'mohadata l wa7ed zmil bacharia, ghadi ytwasel m3ak 9riban.",
		replyCorrection:      "Machi mochkil. Goul liya achno nbeddel (smiya, mdina, adresse wla telephone).",
	},
}

// reply renders one template for the conversation language, falling back
// to English for unknown languages.
func reply(kind replyKind, lang string, args ...any) string {
	table, ok := replyTemplates[lang]
	if !ok {
		table = replyTemplates["en"]
	}
	tpl, ok := table[kind]
	if !ok {
		tpl = replyTemplates["en"][kind]
	}
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, args...)
}
