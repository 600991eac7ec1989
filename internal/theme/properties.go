package theme

// catalog is the closed set of theme properties the output format
// recognizes. Loaded once, never mutated.
var catalog = []Property{

	// Window and common controls
	{Key: "windowBg", Category: CategoryWindow, Required: true, Description: "main window background"},
	{Key: "windowFg", Category: CategoryWindow, Required: true, Description: "main window text"},
	{Key: "windowBgOver", Category: CategoryWindow, Required: true, Description: "hovered background, e.g. list rows"},
	{Key: "windowBgRipple", Category: CategoryWindow, Description: "ripple effect on pressed backgrounds"},
	{Key: "windowSubTextFg", Category: CategoryWindow, Description: "secondary text, e.g. last seen"},
	{Key: "windowBoldFg", Category: CategoryWindow, Description: "bold text, e.g. list item names"},
	{Key: "windowBgActive", Category: CategoryWindow, Required: true, Description: "active/selected background"},
	{Key: "windowFgActive", Category: CategoryWindow, Required: true, Description: "text over active background"},
	{Key: "windowActiveTextFg", Category: CategoryWindow, Description: "active text, e.g. online status"},
	{Key: "windowShadowFg", Category: CategoryWindow, Description: "window border shadow"},
	{Key: "shadowFg", Category: CategoryWindow, Description: "most shadows (with opacity)"},
	{Key: "imageBg", Category: CategoryWindow, Description: "background under partially loaded images"},
	{Key: "activeButtonBg", Category: CategoryWindow, Required: true, Description: "primary button background"},
	{Key: "activeButtonBgOver", Category: CategoryWindow, Description: "primary button background, hovered"},
	{Key: "activeButtonBgRipple", Category: CategoryWindow, Description: "primary button ripple"},
	{Key: "activeButtonFg", Category: CategoryWindow, Required: true, Description: "primary button text"},
	{Key: "activeButtonSecondaryFg", Category: CategoryWindow, Description: "primary button secondary text, e.g. count"},
	{Key: "activeLineFg", Category: CategoryWindow, Description: "active input field border"},
	{Key: "activeLineFgError", Category: CategoryWindow, Description: "invalid input field border"},
	{Key: "lightButtonBg", Category: CategoryWindow, Description: "light button background, e.g. box buttons"},
	{Key: "lightButtonBgOver", Category: CategoryWindow, Description: "light button background, hovered"},
	{Key: "lightButtonFg", Category: CategoryWindow, Description: "light button text"},
	{Key: "attentionButtonFg", Category: CategoryWindow, Description: "attention button text, e.g. sign out"},
	{Key: "attentionButtonFgOver", Category: CategoryWindow, Description: "attention button text, hovered"},
	{Key: "attentionButtonBgOver", Category: CategoryWindow, Description: "attention button background, hovered"},
	{Key: "outlineButtonBg", Category: CategoryWindow, Description: "outlined button background"},
	{Key: "outlineButtonOutlineFg", Category: CategoryWindow, Description: "outlined button border"},
	{Key: "scrollBarBg", Category: CategoryWindow, Description: "scroll bar current rectangle"},
	{Key: "scrollBg", Category: CategoryWindow, Description: "scroll bar background"},
	{Key: "placeholderFg", Category: CategoryWindow, Description: "input field placeholder"},
	{Key: "inputBorderFg", Category: CategoryWindow, Description: "input field bottom border"},
	{Key: "filterInputBorderFg", Category: CategoryWindow, Description: "search field full border"},
	{Key: "checkboxFg", Category: CategoryWindow, Description: "unchecked checkbox outline"},
	{Key: "sliderBgInactive", Category: CategoryWindow, Description: "inactive slider track"},
	{Key: "sliderBgActive", Category: CategoryWindow, Description: "active slider track"},
	{Key: "tooltipBg", Category: CategoryWindow, Description: "tooltip background"},
	{Key: "tooltipFg", Category: CategoryWindow, Description: "tooltip text"},

	// Title bar
	{Key: "titleShadow", Category: CategoryTitleBar, Description: "one pixel line shadow under the title bar"},
	{Key: "titleBg", Category: CategoryTitleBar, Required: true, Description: "inactive title bar background"},
	{Key: "titleBgActive", Category: CategoryTitleBar, Description: "active title bar background"},
	{Key: "titleButtonFg", Category: CategoryTitleBar, Description: "title bar button icon"},
	{Key: "titleButtonBgOver", Category: CategoryTitleBar, Description: "title bar button background, hovered"},
	{Key: "titleButtonFgOver", Category: CategoryTitleBar, Description: "title bar button icon, hovered"},
	{Key: "titleButtonCloseFg", Category: CategoryTitleBar, Description: "close button icon"},
	{Key: "titleButtonCloseBgOver", Category: CategoryTitleBar, Description: "close button background, hovered"},
	{Key: "titleButtonCloseFgOver", Category: CategoryTitleBar, Description: "close button icon, hovered"},
	{Key: "titleFg", Category: CategoryTitleBar, Required: true, Description: "inactive title bar text"},
	{Key: "titleFgActive", Category: CategoryTitleBar, Description: "active title bar text"},

	// Popup menus
	{Key: "menuBg", Category: CategoryMenu, Required: true, Description: "popup menu background"},
	{Key: "menuBgOver", Category: CategoryMenu, Description: "hovered menu item background"},
	{Key: "menuBgRipple", Category: CategoryMenu, Description: "menu item ripple"},
	{Key: "menuIconFg", Category: CategoryMenu, Description: "menu item icon"},
	{Key: "menuIconFgOver", Category: CategoryMenu, Description: "hovered menu item icon"},
	{Key: "menuFgDisabled", Category: CategoryMenu, Description: "disabled menu item text"},
	{Key: "menuSeparatorFg", Category: CategoryMenu, Description: "menu separator line"},

	// Chat list
	{Key: "dialogsMenuIconFg", Category: CategoryDialogs, Description: "chat list hamburger menu icon"},
	{Key: "dialogsMenuIconFgOver", Category: CategoryDialogs, Description: "hovered chat list menu icon"},
	{Key: "dialogsBg", Category: CategoryDialogs, Required: true, Description: "chat list background"},
	{Key: "dialogsNameFg", Category: CategoryDialogs, Required: true, Description: "chat list name text"},
	{Key: "dialogsChatIconFg", Category: CategoryDialogs, Description: "chat list chat icon"},
	{Key: "dialogsDateFg", Category: CategoryDialogs, Description: "chat list date text"},
	{Key: "dialogsTextFg", Category: CategoryDialogs, Description: "chat list message preview text"},
	{Key: "dialogsTextFgService", Category: CategoryDialogs, Description: "chat list service text, e.g. draft"},
	{Key: "dialogsDraftFg", Category: CategoryDialogs, Description: "chat list draft label"},
	{Key: "dialogsVerifiedIconBg", Category: CategoryDialogs, Description: "verified badge background"},
	{Key: "dialogsVerifiedIconFg", Category: CategoryDialogs, Description: "verified badge check"},
	{Key: "dialogsSendingIconFg", Category: CategoryDialogs, Description: "sending clock icon"},
	{Key: "dialogsSentIconFg", Category: CategoryDialogs, Description: "sent/read check icons"},
	{Key: "dialogsUnreadBg", Category: CategoryDialogs, Description: "unread badge background"},
	{Key: "dialogsUnreadBgMuted", Category: CategoryDialogs, Description: "muted unread badge background"},
	{Key: "dialogsUnreadFg", Category: CategoryDialogs, Description: "unread badge counter text"},
	{Key: "dialogsBgOver", Category: CategoryDialogs, Description: "hovered chat list row background"},
	{Key: "dialogsBgActive", Category: CategoryDialogs, Description: "selected chat list row background"},
	{Key: "dialogsNameFgActive", Category: CategoryDialogs, Description: "selected chat list name"},
	{Key: "dialogsDateFgActive", Category: CategoryDialogs, Description: "selected chat list date"},
	{Key: "dialogsTextFgActive", Category: CategoryDialogs, Description: "selected chat list preview text"},
	{Key: "dialogsUnreadBgActive", Category: CategoryDialogs, Description: "selected unread badge"},
	{Key: "dialogsUnreadBgMutedActive", Category: CategoryDialogs, Description: "selected muted unread badge"},
	{Key: "dialogsUnreadFgActive", Category: CategoryDialogs, Description: "selected unread badge text"},
	{Key: "dialogsRippleBg", Category: CategoryDialogs, Description: "chat list row ripple"},
	{Key: "dialogsRippleBgActive", Category: CategoryDialogs, Description: "selected chat list row ripple"},
	{Key: "dialogsForwardBg", Category: CategoryDialogs, Description: "forwarding panel background"},
	{Key: "dialogsForwardFg", Category: CategoryDialogs, Description: "forwarding panel text"},
	{Key: "searchedBarBg", Category: CategoryDialogs, Description: "search results bar background"},
	{Key: "searchedBarFg", Category: CategoryDialogs, Description: "search results bar text"},

	// Message history
	{Key: "topBarBg", Category: CategoryHistory, Description: "top bar background"},
	{Key: "historyTextInFg", Category: CategoryHistory, Required: true, Description: "incoming message text"},
	{Key: "historyTextInFgSelected", Category: CategoryHistory, Description: "selected incoming message text"},
	{Key: "historyTextOutFg", Category: CategoryHistory, Required: true, Description: "outgoing message text"},
	{Key: "historyTextOutFgSelected", Category: CategoryHistory, Description: "selected outgoing message text"},
	{Key: "historyLinkInFg", Category: CategoryHistory, Description: "incoming message link"},
	{Key: "historyLinkInFgSelected", Category: CategoryHistory, Description: "selected incoming message link"},
	{Key: "historyLinkOutFg", Category: CategoryHistory, Description: "outgoing message link"},
	{Key: "historyLinkOutFgSelected", Category: CategoryHistory, Description: "selected outgoing message link"},
	{Key: "historyFileNameInFg", Category: CategoryHistory, Description: "incoming file name"},
	{Key: "historyFileNameOutFg", Category: CategoryHistory, Description: "outgoing file name"},
	{Key: "historyOutIconFg", Category: CategoryHistory, Description: "outgoing message status icons"},
	{Key: "historyOutIconFgSelected", Category: CategoryHistory, Description: "selected outgoing status icons"},
	{Key: "historyIconFgInverted", Category: CategoryHistory, Description: "status icons over media"},
	{Key: "historySendingOutIconFg", Category: CategoryHistory, Description: "outgoing sending clock icon"},
	{Key: "historySendingInIconFg", Category: CategoryHistory, Description: "incoming sending clock icon"},
	{Key: "historyCallArrowInFg", Category: CategoryHistory, Description: "incoming call arrow"},
	{Key: "historyCallArrowMissedInFg", Category: CategoryHistory, Description: "missed call arrow"},
	{Key: "historyCallArrowOutFg", Category: CategoryHistory, Description: "outgoing call arrow"},
	{Key: "historyUnreadBarBg", Category: CategoryHistory, Description: "unread messages bar background"},
	{Key: "historyUnreadBarBorder", Category: CategoryHistory, Description: "unread messages bar shadow"},
	{Key: "historyUnreadBarFg", Category: CategoryHistory, Description: "unread messages bar text"},
	{Key: "historyForwardChooseBg", Category: CategoryHistory, Description: "forward chooser overlay background"},
	{Key: "historyForwardChooseFg", Category: CategoryHistory, Description: "forward chooser overlay text"},
	{Key: "historyPeer1NameFg", Category: CategoryHistory, Description: "first member name in groups"},
	{Key: "historyPeer2NameFg", Category: CategoryHistory, Description: "second member name in groups"},
	{Key: "historyPeer3NameFg", Category: CategoryHistory, Description: "third member name in groups"},
	{Key: "historyPeer4NameFg", Category: CategoryHistory, Description: "fourth member name in groups"},
	{Key: "msgInBg", Category: CategoryHistory, Required: true, Description: "incoming message bubble"},
	{Key: "msgInBgSelected", Category: CategoryHistory, Description: "selected incoming bubble"},
	{Key: "msgOutBg", Category: CategoryHistory, Required: true, Description: "outgoing message bubble"},
	{Key: "msgOutBgSelected", Category: CategoryHistory, Description: "selected outgoing bubble"},
	{Key: "msgSelectOverlay", Category: CategoryHistory, Description: "selection overlay over messages"},
	{Key: "msgStickerOverlay", Category: CategoryHistory, Description: "selection overlay over stickers"},
	{Key: "msgInServiceFg", Category: CategoryHistory, Description: "incoming service text, e.g. forwarded from"},
	{Key: "msgInServiceFgSelected", Category: CategoryHistory, Description: "selected incoming service text"},
	{Key: "msgOutServiceFg", Category: CategoryHistory, Description: "outgoing service text"},
	{Key: "msgOutServiceFgSelected", Category: CategoryHistory, Description: "selected outgoing service text"},
	{Key: "msgInShadow", Category: CategoryHistory, Description: "incoming bubble shadow"},
	{Key: "msgOutShadow", Category: CategoryHistory, Description: "outgoing bubble shadow"},
	{Key: "msgInDateFg", Category: CategoryHistory, Description: "incoming message time"},
	{Key: "msgInDateFgSelected", Category: CategoryHistory, Description: "selected incoming message time"},
	{Key: "msgOutDateFg", Category: CategoryHistory, Description: "outgoing message time"},
	{Key: "msgOutDateFgSelected", Category: CategoryHistory, Description: "selected outgoing message time"},
	{Key: "msgServiceFg", Category: CategoryHistory, Description: "service message text, e.g. date"},
	{Key: "msgServiceBg", Category: CategoryHistory, Description: "service message background"},
	{Key: "msgServiceBgSelected", Category: CategoryHistory, Description: "selected service message background"},
	{Key: "msgInReplyBarColor", Category: CategoryHistory, Description: "incoming reply bar"},
	{Key: "msgOutReplyBarColor", Category: CategoryHistory, Description: "outgoing reply bar"},
	{Key: "msgImgReplyBarColor", Category: CategoryHistory, Description: "reply bar over media"},
	{Key: "msgInMonoFg", Category: CategoryHistory, Description: "incoming monospace text"},
	{Key: "msgOutMonoFg", Category: CategoryHistory, Description: "outgoing monospace text"},
	{Key: "msgDateImgFg", Category: CategoryHistory, Description: "time over media"},
	{Key: "msgDateImgBg", Category: CategoryHistory, Description: "time background over media"},
	{Key: "msgFileThumbLinkInFg", Category: CategoryHistory, Description: "incoming file thumbnail link"},
	{Key: "msgFileThumbLinkOutFg", Category: CategoryHistory, Description: "outgoing file thumbnail link"},
	{Key: "msgFileInBg", Category: CategoryHistory, Description: "incoming audio file circle"},
	{Key: "msgFileInBgOver", Category: CategoryHistory, Description: "hovered incoming audio circle"},
	{Key: "msgFileOutBg", Category: CategoryHistory, Description: "outgoing audio file circle"},
	{Key: "msgFileOutBgOver", Category: CategoryHistory, Description: "hovered outgoing audio circle"},
	{Key: "msgWaveformInActive", Category: CategoryHistory, Description: "played incoming voice waveform"},
	{Key: "msgWaveformInInactive", Category: CategoryHistory, Description: "unplayed incoming voice waveform"},
	{Key: "msgWaveformOutActive", Category: CategoryHistory, Description: "played outgoing voice waveform"},
	{Key: "msgWaveformOutInactive", Category: CategoryHistory, Description: "unplayed outgoing voice waveform"},

	// Calls
	{Key: "callBg", Category: CategoryCalls, Description: "call window background"},
	{Key: "callNameFg", Category: CategoryCalls, Description: "call window member name"},
	{Key: "callFingerprintBg", Category: CategoryCalls, Description: "call window key emoji background"},
	{Key: "callStatusFg", Category: CategoryCalls, Description: "call window status text"},
	{Key: "callIconFg", Category: CategoryCalls, Description: "call window button icons"},
	{Key: "callAnswerBg", Category: CategoryCalls, Description: "accept call button background"},
	{Key: "callHangupBg", Category: CategoryCalls, Description: "hangup button background"},
	{Key: "callCancelBg", Category: CategoryCalls, Description: "cancel call button background"},
	{Key: "callCancelFg", Category: CategoryCalls, Description: "cancel call button icon"},
	{Key: "callBarBg", Category: CategoryCalls, Description: "active call bar background"},
	{Key: "callBarBgMuted", Category: CategoryCalls, Description: "muted call bar background"},
	{Key: "callBarFg", Category: CategoryCalls, Description: "call bar text and icons"},
	{Key: "callArrowFg", Category: CategoryCalls, Description: "call arrow in call list"},
	{Key: "callArrowMissedFg", Category: CategoryCalls, Description: "missed call arrow in call list"},

	// Intro screens
	{Key: "introBg", Category: CategoryIntro, Description: "intro screens background"},
	{Key: "introTitleFg", Category: CategoryIntro, Description: "intro title text"},
	{Key: "introDescriptionFg", Category: CategoryIntro, Description: "intro description text"},
	{Key: "introErrorFg", Category: CategoryIntro, Description: "intro error text"},
	{Key: "introCoverTopBg", Category: CategoryIntro, Description: "intro cover gradient top"},
	{Key: "introCoverBottomBg", Category: CategoryIntro, Description: "intro cover gradient bottom"},

	// Media viewer and overlays
	{Key: "mediaInFg", Category: CategoryMedia, Description: "incoming media status text"},
	{Key: "mediaOutFg", Category: CategoryMedia, Description: "outgoing media status text"},
	{Key: "mediaviewFileBg", Category: CategoryMedia, Description: "media viewer file background"},
	{Key: "mediaviewFileNameFg", Category: CategoryMedia, Description: "media viewer file name"},
	{Key: "mediaviewFileSizeFg", Category: CategoryMedia, Description: "media viewer file size"},
	{Key: "mediaviewFileExtFg", Category: CategoryMedia, Description: "file extension over thumbnail"},
	{Key: "mediaviewMenuBg", Category: CategoryMedia, Description: "media viewer context menu background"},
	{Key: "mediaviewMenuBgOver", Category: CategoryMedia, Description: "hovered media viewer menu item"},
	{Key: "mediaviewMenuFg", Category: CategoryMedia, Description: "media viewer menu text"},
	{Key: "mediaviewBg", Category: CategoryMedia, Description: "media viewer background"},
	{Key: "mediaviewVideoBg", Category: CategoryMedia, Description: "media viewer video background"},
	{Key: "mediaviewControlBg", Category: CategoryMedia, Description: "media viewer controls background"},
	{Key: "mediaviewControlFg", Category: CategoryMedia, Description: "media viewer controls icon"},
	{Key: "mediaviewCaptionBg", Category: CategoryMedia, Description: "media viewer caption background"},
	{Key: "mediaviewCaptionFg", Category: CategoryMedia, Description: "media viewer caption text"},
	{Key: "mediaviewTextLinkFg", Category: CategoryMedia, Description: "media viewer caption link"},
	{Key: "mediaviewSaveMsgBg", Category: CategoryMedia, Description: "save confirmation toast background"},
	{Key: "mediaviewSaveMsgFg", Category: CategoryMedia, Description: "save confirmation toast text"},
	{Key: "mediaviewPlaybackActive", Category: CategoryMedia, Description: "played video progress"},
	{Key: "mediaviewPlaybackInactive", Category: CategoryMedia, Description: "unplayed video progress"},
	{Key: "mediaviewPlaybackProgressFg", Category: CategoryMedia, Description: "video playback time text"},
	{Key: "mediaviewPlaybackIconFg", Category: CategoryMedia, Description: "video playback controls icon"},
	{Key: "mediaviewTransparentBg", Category: CategoryMedia, Description: "transparency checkerboard light cell"},
	{Key: "mediaviewTransparentFg", Category: CategoryMedia, Description: "transparency checkerboard dark cell"},
	{Key: "notificationBg", Category: CategoryMedia, Description: "notification popup background"},

	// Boxes, contacts and panels
	{Key: "layerBg", Category: CategoryMisc, Description: "overlay under popup boxes"},
	{Key: "cancelIconFg", Category: CategoryMisc, Description: "cancel cross icon"},
	{Key: "boxBg", Category: CategoryMisc, Description: "popup box background"},
	{Key: "boxTextFg", Category: CategoryMisc, Description: "popup box text"},
	{Key: "boxTextFgGood", Category: CategoryMisc, Description: "popup box positive text"},
	{Key: "boxTextFgError", Category: CategoryMisc, Description: "popup box error text"},
	{Key: "boxTitleFg", Category: CategoryMisc, Description: "popup box title"},
	{Key: "boxSearchBg", Category: CategoryMisc, Description: "popup box search background"},
	{Key: "boxTitleAdditionalFg", Category: CategoryMisc, Description: "popup box title additional text"},
	{Key: "boxTitleCloseFg", Category: CategoryMisc, Description: "popup box close icon"},
	{Key: "contactsBg", Category: CategoryMisc, Description: "contacts list background"},
	{Key: "contactsBgOver", Category: CategoryMisc, Description: "hovered contacts list row"},
	{Key: "contactsNameFg", Category: CategoryMisc, Description: "contacts list name"},
	{Key: "contactsStatusFg", Category: CategoryMisc, Description: "contacts list status"},
	{Key: "contactsStatusFgOnline", Category: CategoryMisc, Description: "contacts list online status"},
	{Key: "photoCropFadeBg", Category: CategoryMisc, Description: "avatar crop overlay"},
	{Key: "trayCounterBg", Category: CategoryMisc, Description: "tray unread counter background"},
	{Key: "trayCounterBgMute", Category: CategoryMisc, Description: "muted tray counter background"},
	{Key: "trayCounterFg", Category: CategoryMisc, Description: "tray counter text"},
	{Key: "smallCloseIconFg", Category: CategoryMisc, Description: "small panel close icon"},
	{Key: "radialFg", Category: CategoryMisc, Description: "radial loader line"},
	{Key: "radialBg", Category: CategoryMisc, Description: "radial loader background"},
	{Key: "emojiPanBg", Category: CategoryMisc, Description: "emoji panel background"},
	{Key: "emojiPanCategories", Category: CategoryMisc, Description: "emoji panel categories background"},
	{Key: "emojiPanHeaderFg", Category: CategoryMisc, Description: "emoji panel section header"},
	{Key: "stickerPreviewBg", Category: CategoryMisc, Description: "sticker preview overlay"},
}
